// Package config loads the engine's external JSON configuration: the
// content catalog (card/hero definitions) and a GameConfig record, using
// the teacher's exact internal/config/config.go pattern — sync.Once +
// os.ReadFile + json.Unmarshal + a safe-default getter — rather than any
// third-party config loader, since the teacher reaches for nothing beyond
// the standard library for this concern and SPEC_FULL.md's ambient stack
// follows suit.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"legendcore/internal/ports"
)

// catalogFile is the on-disk shape of a content pack: flat lists of card
// and hero definitions, keyed by id at load time for O(1) lookup.
type catalogFile struct {
	Cards  []ports.CardDefinition `json:"cards"`
	Heroes []ports.HeroDefinition `json:"heroes"`
}

// JSONCatalog implements ports.ContentCatalog from a loaded catalogFile.
type JSONCatalog struct {
	cards  map[string]ports.CardDefinition
	heroes map[string]ports.HeroDefinition
	order  []string
}

var (
	catalog     *JSONCatalog
	catalogOnce sync.Once
	catalogErr  error
)

// LoadCatalog loads the content catalog from path exactly once per
// process; subsequent calls (even with a different path) return the first
// load's result or error, matching the teacher's LoadBetConfig contract.
func LoadCatalog(path string) error {
	catalogOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			catalogErr = fmt.Errorf("failed to read content catalog: %w", err)
			return
		}
		var f catalogFile
		if err := json.Unmarshal(data, &f); err != nil {
			catalogErr = fmt.Errorf("failed to unmarshal content catalog: %w", err)
			return
		}
		c := &JSONCatalog{
			cards:  make(map[string]ports.CardDefinition, len(f.Cards)),
			heroes: make(map[string]ports.HeroDefinition, len(f.Heroes)),
		}
		for _, card := range f.Cards {
			c.cards[card.DefinitionId] = card
		}
		for _, hero := range f.Heroes {
			c.heroes[hero.HeroId] = hero
			c.order = append(c.order, hero.HeroId)
		}
		catalog = c
	})
	return catalogErr
}

// GetCatalog returns the process-global catalog loaded by LoadCatalog, or
// nil if LoadCatalog was never called (or failed).
func GetCatalog() *JSONCatalog {
	return catalog
}

func (c *JSONCatalog) CardDefinition(defID string) (ports.CardDefinition, bool) {
	d, ok := c.cards[defID]
	return d, ok
}

func (c *JSONCatalog) HeroDefinition(heroID string) (ports.HeroDefinition, bool) {
	h, ok := c.heroes[heroID]
	return h, ok
}

func (c *JSONCatalog) AllHeroIds() []string {
	return append([]string{}, c.order...)
}
