// Package ports defines the external collaborators spec.md §1 declares
// deliberately out of scope: content catalogs and replay persistence. Each
// is one small interface (ReplayStore's methods take a context.Context
// first; ContentCatalog's in-memory lookups take none), grounded on the teacher's
// internal/ports/account.go / economy.go (one narrow interface per external
// concern) rather than one fat "backend" interface.
package ports

import (
	"context"

	"legendcore/internal/choice"
	"legendcore/internal/model"
)

// CardDefinition is the data shape a content catalog supplies for a card
// definition id; the catalog owns authoring, the engine only consumes this
// shape.
type CardDefinition struct {
	DefinitionId string
	Name         string
	CardType     model.CardType
	CardSubType  model.CardSubType
}

// HeroDefinition is the data shape supplied for a hero id.
type HeroDefinition struct {
	HeroId    string
	Name      string
	FactionId string
	MaxHealth int
	SkillIds  []string
}

// ContentCatalog supplies card/hero definitions without the engine owning
// content authoring.
type ContentCatalog interface {
	CardDefinition(defID string) (CardDefinition, bool)
	HeroDefinition(heroID string) (HeroDefinition, bool)
	AllHeroIds() []string
}

// Replay is the persisted record shape spec.md §6 defines: the inputs
// needed to reproduce a complete game trace.
type Replay struct {
	Seed           int64
	InitialConfig  GameConfig
	ChoiceSequence []choice.ChoiceResult
}

// GameConfig is the initial configuration contract from spec.md §6.
type GameConfig struct {
	PlayerConfigs        []PlayerConfig
	DeckConfig           DeckConfig
	Seed                 int64
	GameModeId           string
	GameVariantOptions   map[string]any
	InitialHandCardCount int
}

// PlayerConfig is one seat's static configuration.
type PlayerConfig struct {
	Seat      int
	FactionId string
}

// DeckConfig names which content packs are included in the deck.
type DeckConfig struct {
	IncludedPacks []string
}

// ReplayStore persists/retrieves a Replay record. Serialization format and
// storage medium are entirely external to the core.
type ReplayStore interface {
	SaveReplay(ctx context.Context, id string, r Replay) error
	LoadReplay(ctx context.Context, id string) (Replay, error)
}
