package connector

import (
	"context"

	"github.com/hejijunhao/vmcat/internal/model"
)

// Connector defines the interface all log source connectors must implement.
type Connector interface {
	// Stream reads every configured source and sends lines as they are read.
	// The line channel is closed when all sources are exhausted or ctx is
	// done. A read error is sent on the error channel, which has room for
	// one value, before the line channel closes; the error channel is closed
	// once reading has finished.
	Stream(ctx context.Context, cfg ConnectorConfig) (<-chan model.RawLog, <-chan error, error)

	// Query reads the configured sources into memory, in source order.
	Query(ctx context.Context, cfg ConnectorConfig, params QueryParams) ([]model.RawLog, error)
}

// ConnectorConfig holds provider-specific settings.
type ConnectorConfig struct {
	Provider string
	Paths    []string // "-" reads standard input
	Extra    map[string]string
}

// QueryParams defines filters for one-shot queries.
type QueryParams struct {
	Limit  int    // 0 means no limit
	Filter string // keep only lines containing this substring
}
