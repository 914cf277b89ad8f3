package goals

import (
	"fmt"
	"io"
	"time"
)

// Observer receives mutation phase transitions and reconcile failures.
type Observer interface {
	OnPhase(op string, phase Phase)
	OnReconcileFailed(op string, err error)
}

// LogObserver writes structured lines to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnPhase(op string, phase Phase) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] goal_mutation op=%s phase=%s\n", ts, op, phase)
}

func (o *LogObserver) OnReconcileFailed(op string, err error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] goal_reconcile_failed op=%s error=%q\n", ts, op, err.Error())
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnPhase(string, Phase) {}
func (NoopObserver) OnReconcileFailed(string, error) {}
