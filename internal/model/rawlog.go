package model

// RawLog is one line of VM log text, produced by connectors and consumed by the engine.
type RawLog struct {
	Source string // file path, or "-" for stdin
	Line   int    // 1-based line number within Source
	Text   string // original line, without the trailing newline
}
