package sim

import (
	"encoding/json"
	"os"
	"time"

	"github.com/talgya/arenasim/internal/tribute"
)

// Document is the exported record of one completed run.
type Document struct {
	Timestamp string             `json:"timestamp"`
	Seed      int64              `json:"seed"`
	MaxDays   int                `json:"max_days"`
	FinalDay  int                `json:"final_day"`
	Alliances [][]string         `json:"alliances"`
	Tributes  []*tribute.Tribute `json:"tributes"`
	DeathLog  []DeathEntry       `json:"death_log"`
	Log       []string           `json:"log"`
	Stats     Stats              `json:"stats"`
}

// Export snapshots the run into a Document.
func (s *Simulator) Export() Document {
	return Document{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Seed:      s.Cfg.Seed,
		MaxDays:   s.Cfg.MaxDays,
		FinalDay:  s.dayCount,
		Alliances: s.Alliances.Groups(),
		Tributes:  s.Tributes,
		DeathLog:  s.Rec.DeathLog,
		Log:       s.Rec.Log,
		Stats:     s.Rec.Stats,
	}
}

// exportRun writes the run document to the configured path. Export failure
// is reported in the narrative but never fails the run.
func (s *Simulator) exportRun() {
	doc := s.Export()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		err = os.WriteFile(s.Cfg.ExportPath, data, 0o644)
	}
	s.Rec.Line("")
	if err != nil {
		s.Rec.Linef("Failed to export log: %v", err)
		return
	}
	s.Rec.Linef("Run exported to %s", s.Cfg.ExportPath)
}
