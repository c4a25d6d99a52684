package sim

import (
	"fmt"
	"log/slog"
)

// DeathEntry is one death log record, appended exactly once per death when
// the death is harvested at the end of a block.
type DeathEntry struct {
	Name  string `json:"name"`
	Cause string `json:"cause"`
	Day   int    `json:"day"`
	Phase string `json:"phase"`
}

// Stats are the per-run aggregate statistics.
type Stats struct {
	DayMoraleAvg []float64 `json:"day_morale_avg"`
	EventsRun    int       `json:"events_run"`
}

// Recorder accumulates the append-only narrative log, the death log, and
// run statistics.
type Recorder struct {
	Log      []string
	DeathLog []DeathEntry
	Stats    Stats

	sink func(string)
}

func newRecorder(sink func(string)) *Recorder {
	return &Recorder{sink: sink}
}

// Line appends one narrative line and forwards it to the sink, if any.
// A broken sink never interrupts the run.
func (r *Recorder) Line(msg string) {
	r.Log = append(r.Log, msg)
	if r.sink == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			slog.Warn("log sink panicked, continuing", "panic", p)
		}
	}()
	r.sink(msg)
}

// Linef appends a formatted narrative line.
func (r *Recorder) Linef(format string, args ...any) {
	r.Line(fmt.Sprintf(format, args...))
}

// RecordDeath appends a death log entry.
func (r *Recorder) RecordDeath(name, cause string, day int, phase string) {
	r.DeathLog = append(r.DeathLog, DeathEntry{Name: name, Cause: cause, Day: day, Phase: phase})
}
