package sim

import (
	"fmt"
	"io"
	"time"
)

// Report summarises one scenario run.
type Report struct {
	Scenario        string
	Ticks           int
	Elapsed         time.Duration
	Transitions     int
	Strikes         int
	Defeated        int
	PlayerHitsTaken int
	PlayerDowns     int
	PlayerHealth    int
	Events          []Event
}

// TransitionsOf returns the combat transitions of one mostro in order.
func (r Report) TransitionsOf(mostro string) []string {
	var out []string
	for _, ev := range r.Events {
		if ev.Kind == EventTransition && ev.Mostro == mostro {
			out = append(out, ev.From+">"+ev.To)
		}
	}
	return out
}

// WriteTimeline prints every event, one per line.
func (r Report) WriteTimeline(w io.Writer) error {
	for _, ev := range r.Events {
		line := fmt.Sprintf("%7.2fs  %-12s %-10s", ev.At.Seconds(), ev.Mostro, ev.Kind)
		if ev.Kind == EventTransition {
			line += " " + ev.From + " -> " + ev.To
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
