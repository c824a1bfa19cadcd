package output

import (
	"context"

	"github.com/hejijunhao/vmcat/internal/model"
)

// Output defines the interface for trigger event destinations.
type Output interface {
	// Write delivers one classified event.
	Write(ctx context.Context, event model.TriggerEvent) error
	// Summarize delivers the aggregate of a finished run.
	Summarize(ctx context.Context, summary model.Summary) error
	Close() error
}
