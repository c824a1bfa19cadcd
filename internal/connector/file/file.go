package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hejijunhao/vmcat/internal/connector"
	"github.com/hejijunhao/vmcat/internal/model"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

const maxLineSize = 1024 * 1024 // 1MB

func init() {
	connector.Register("file", func() connector.Connector {
		return &Connector{}
	})
}

// Connector reads VM log files line by line. Several files are read
// concurrently.
type Connector struct {
	// Stdin overrides os.Stdin when set.
	Stdin io.Reader
}

// Stream opens every path up front, so a missing file fails the call, then
// reads them concurrently. Lines of one file keep their order; lines of
// different files interleave. The first read error stops every reader and is
// reported on the error channel.
func (c *Connector) Stream(ctx context.Context, cfg connector.ConnectorConfig) (<-chan model.RawLog, <-chan error, error) {
	sources, err := c.open(paths(cfg))
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan model.RawLog, 64)
	g, gctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		src := src
		g.Go(func() error {
			defer src.Close()
			return scan(gctx, src, func(raw model.RawLog) bool {
				select {
				case ch <- raw:
					return true
				case <-gctx.Done():
					return false
				}
			})
		})
	}

	errc := make(chan error, 1)
	go func() {
		defer close(ch)
		if err := g.Wait(); err != nil && ctx.Err() == nil {
			slog.Debug("read error", "connector", "file", "error", err)
			errc <- err
		}
		close(errc)
	}()

	return ch, errc, nil
}

// Query reads every path concurrently and returns lines grouped by path in
// the configured order.
func (c *Connector) Query(ctx context.Context, cfg connector.ConnectorConfig, params connector.QueryParams) ([]model.RawLog, error) {
	sources, err := c.open(paths(cfg))
	if err != nil {
		return nil, err
	}

	perSource := make([][]model.RawLog, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			defer src.Close()
			return scan(gctx, src, func(raw model.RawLog) bool {
				if params.Filter == "" || strings.Contains(raw.Text, params.Filter) {
					perSource[i] = append(perSource[i], raw)
				}
				return true
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []model.RawLog
	for _, lines := range perSource {
		results = append(results, lines...)
		if params.Limit > 0 && len(results) >= params.Limit {
			return results[:params.Limit], nil
		}
	}
	return results, nil
}

type source struct {
	name string
	r    io.Reader
	c    io.Closer // nil for stdin
}

func (s source) Close() {
	if s.c != nil {
		s.c.Close()
	}
}

func paths(cfg connector.ConnectorConfig) []string {
	if len(cfg.Paths) == 0 {
		return []string{Stdin}
	}
	return cfg.Paths
}

func (c *Connector) open(paths []string) ([]source, error) {
	sources := make([]source, 0, len(paths))
	for _, p := range paths {
		if p == Stdin {
			r := c.Stdin
			if r == nil {
				r = os.Stdin
			}
			sources = append(sources, source{name: Stdin, r: r})
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			for _, s := range sources {
				s.Close()
			}
			return nil, fmt.Errorf("file connector: %w", err)
		}
		sources = append(sources, source{name: p, r: f, c: f})
	}
	return sources, nil
}

// scan calls emit for every line of src until emit returns false.
func scan(ctx context.Context, src source, emit func(model.RawLog) bool) error {
	sc := bufio.NewScanner(src.r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		if !emit(model.RawLog{Source: src.name, Line: n, Text: sc.Text()}) {
			return ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("file connector: read %s: %w", src.name, err)
	}
	return nil
}
