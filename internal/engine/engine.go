package engine

import (
	"github.com/hejijunhao/vmcat/internal/engine/classifier"
	"github.com/hejijunhao/vmcat/internal/model"
)

// Engine turns raw log lines into classified trigger events.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	classifier *classifier.Classifier
}

// New creates an Engine with the provided classifier.
func New(cls *classifier.Classifier) *Engine {
	return &Engine{classifier: cls}
}

// Process classifies a single line. The second return is false when the
// line carries no trigger.
func (e *Engine) Process(raw model.RawLog) (model.TriggerEvent, bool) {
	res, ok := e.classifier.Classify(raw.Text)
	if !ok {
		return model.TriggerEvent{}, false
	}
	return model.TriggerEvent{
		Source:      raw.Source,
		Line:        raw.Line,
		Trigger:     res.Kind.String(),
		Literal:     res.Token,
		Known:       res.Kind.Known(),
		GC:          res.Kind.IsGC(),
		Description: res.Kind.Description(),
		Raw:         raw.Text,
	}, true
}

// ProcessBatch classifies a slice of lines, dropping those without a trigger.
func (e *Engine) ProcessBatch(raws []model.RawLog) []model.TriggerEvent {
	events := make([]model.TriggerEvent, 0, len(raws))
	for _, raw := range raws {
		if ev, ok := e.Process(raw); ok {
			events = append(events, ev)
		}
	}
	return events
}
