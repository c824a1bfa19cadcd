package model

// Summary aggregates the events of one run.
type Summary struct {
	Sources  int            `json:"sources"`
	Lines    int            `json:"lines"`
	Matched  int            `json:"matched"`
	Unknown  int            `json:"unknown"`
	Triggers []TriggerCount `json:"triggers"`
}

// TriggerCount is the number of events seen for one trigger. Unknown
// triggers are counted per distinct literal.
type TriggerCount struct {
	Trigger string `json:"trigger"`
	Literal string `json:"literal"`
	Known   bool   `json:"known"`
	GC      bool   `json:"gc,omitempty"`
	Count   int    `json:"count"`
}

// GCCount returns the number of matched events whose trigger is a collection.
func (s Summary) GCCount() int {
	n := 0
	for _, tc := range s.Triggers {
		if tc.GC {
			n += tc.Count
		}
	}
	return n
}
