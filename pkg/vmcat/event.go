package vmcat

// Event is a log line classified by trigger.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Event struct {
	Trigger     Trigger `json:"-"`
	Name        string  `json:"trigger"`               // REDEFINE_CLASSES, UNKNOWN, ...
	Literal     string  `json:"literal"`               // token as it appeared in the line
	Known       bool    `json:"known"`                 // false for Unknown
	GC          bool    `json:"gc,omitempty"`          // trigger is a collection
	Description string  `json:"description,omitempty"` // empty for Unknown
	Line        string  `json:"line,omitempty"`        // original line
}

// Count is the number of events seen for one trigger literal.
type Count struct {
	Name    string `json:"trigger"`
	Literal string `json:"literal"`
	Known   bool   `json:"known"`
	GC      bool   `json:"gc,omitempty"`
	Count   int    `json:"count"`
}

// Summary aggregates the events of a ScanAll call.
type Summary struct {
	Sources  int     `json:"sources"` // inputs scanned; the lines of one ScanAll call are one input
	Lines    int     `json:"lines"`
	Matched  int     `json:"matched"`
	Unknown  int     `json:"unknown"`
	Triggers []Count `json:"triggers"` // count descending, then name
}
