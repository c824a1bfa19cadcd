package model

// TriggerEvent is vmcat's output type: one log line with its safepoint trigger classified.
type TriggerEvent struct {
	Source      string `json:"source,omitempty"`
	Line        int    `json:"line,omitempty"`
	Trigger     string `json:"trigger"`               // kind name (REDEFINE_CLASSES, UNKNOWN, ...)
	Literal     string `json:"literal"`               // token as it appeared in the line
	Known       bool   `json:"known"`                 // false when Trigger is UNKNOWN
	GC          bool   `json:"gc,omitempty"`          // trigger is a collection
	Description string `json:"description,omitempty"` // populated at full verbosity
	Raw         string `json:"raw,omitempty"`         // original line
}
