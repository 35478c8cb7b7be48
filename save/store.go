// Package save keeps the best finished run between sessions.
package save

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	runsObject   = "runs"
	bestProperty = "best"
)

// BestRun is the longest survived run. Gems and kills break ties.
type BestRun struct {
	Seconds int `yaml:"seconds"`
	Gems    int `yaml:"gems"`
	Kills   int `yaml:"kills"`
}

// Beats reports whether r is better than other.
func (r BestRun) Beats(other BestRun) bool {
	if r.Seconds != other.Seconds {
		return r.Seconds > other.Seconds
	}
	if r.Gems != other.Gems {
		return r.Gems > other.Gems
	}
	return r.Kills > other.Kills
}

// Store persists BestRun through gdata. A nil manager keeps the record in
// memory only.
type Store struct {
	manager *gdata.Manager
	best    BestRun
}

// Open creates a gdata backed store for appName. When gdata cannot open its
// storage the store still works, without persistence.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[save] storage unavailable: %v (best run kept in memory)", err)
		m = nil
	}
	s := NewStore(m)
	if err := s.Load(); err != nil {
		log.Printf("[save] load best run: %v", err)
	}
	return s
}

func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

func (s *Store) Load() error {
	if s == nil || s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(runsObject, bestProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(runsObject, bestProperty)
	if err != nil {
		return fmt.Errorf("save: load best run: %w", err)
	}
	var best BestRun
	if err := yaml.Unmarshal(data, &best); err != nil {
		return fmt.Errorf("save: decode best run: %w", err)
	}
	s.best = best
	return nil
}

func (s *Store) Best() BestRun {
	if s == nil {
		return BestRun{}
	}
	return s.best
}

// Submit records run if it beats the current best and reports whether it
// did.
func (s *Store) Submit(run BestRun) (bool, error) {
	if s == nil || !run.Beats(s.best) {
		return false, nil
	}
	s.best = run
	if s.manager == nil {
		return true, nil
	}
	data, err := yaml.Marshal(run)
	if err != nil {
		return true, fmt.Errorf("save: encode best run: %w", err)
	}
	if err := s.manager.SaveObjectProp(runsObject, bestProperty, data); err != nil {
		return true, fmt.Errorf("save: write best run: %w", err)
	}
	log.Printf("[save] new best run: %ds, %d gems, %d kills", run.Seconds, run.Gems, run.Kills)
	return true, nil
}
