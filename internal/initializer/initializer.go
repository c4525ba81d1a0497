// Package initializer builds a playable Game from a ports.GameConfig:
// camp assignment, hero draft, deck build/shuffle, and the initial deal.
//
// Grounded on the teacher's app.Service.StartGame (deck build, shuffle,
// deal, first-turn selection) and domain/deck.go's NewDeck/ShuffleDeck/
// SortHand helpers, generalized from a fixed 52-card Tien Len deck to the
// configurable multi-pack deck of spec.md §6.
package initializer

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/ports"
	"legendcore/internal/zone"
)

const (
	minPlayers = 4
	maxPlayers = 10
)

// Initializer builds Games from configuration. It constructs its own
// CardMoveService bound to the Game it builds — a mover must always be
// bound to the exact Game instance it mutates (spec.md §4.3), so one
// supplied ahead of time could never be bound correctly.
type Initializer struct {
	Bus     *event.Bus
	Catalog ports.ContentCatalog
	Oracle  choice.Oracle
	Shuffle func([]model.Card)
}

// Initialize validates config, builds the deck, assigns camps, runs the
// hero draft, and deals each player's initial hand.
func (init Initializer) Initialize(config ports.GameConfig) (*model.Game, error) {
	n := len(config.PlayerConfigs)
	if n < minPlayers || n > maxPlayers {
		return nil, &InitializationError{Code: InvalidConfig, Message: "player count out of range"}
	}

	game := model.NewGame(n)
	mover := zone.New(game, init.Bus)
	for i, pc := range config.PlayerConfigs {
		game.Players[i].FactionId = pc.FactionId
	}

	roles := RoleTableFor(n)
	if init.Shuffle != nil {
		applyPermutation(roles, permutationFrom(init.Shuffle, len(roles)))
	}
	lordSeat := 0
	for i, p := range game.Players {
		p.CampId = roles[i]
		if roles[i] == model.Lord {
			p.RoleRevealed = true
			p.SetFlag("IsLord", true)
			lordSeat = i
		}
	}

	poolSize := 0
	if v, ok := config.GameVariantOptions["heroPoolSize"]; ok {
		if n, ok := v.(int); ok {
			poolSize = n
		}
	}
	if init.Catalog != nil {
		if code := DraftHeroes(game, init.Catalog, init.Oracle, init.Bus, poolSize); code != InitOK {
			return nil, &InitializationError{Code: code, Message: "hero draft failed"}
		}
	}

	deckCards := BuildStandardDeck(game.NextCardId)
	if init.Shuffle != nil {
		init.Shuffle(deckCards)
	}
	game.DrawPile.Insert(deckCards, false)

	handCount := config.InitialHandCardCount
	for _, p := range game.Players {
		count := handCount
		if count <= 0 {
			count = p.MaxHealth
		}
		if err := deal(mover, game, p, count); err != nil {
			return nil, err
		}
	}

	game.CurrentPlayerSeat = lordSeat
	return game, nil
}

func deal(mover *zone.CardMoveService, game *model.Game, p *model.Player, count int) error {
	if game.DrawPile.Len() < count {
		return &InitializationError{Code: NotEnoughCardsForInitialHands, Message: "draw pile exhausted during deal"}
	}
	cards := append([]model.Card{}, game.DrawPile.Cards[:count]...)
	return mover.Move(zone.Descriptor{
		SourceZone: game.DrawPile.Id,
		TargetZone: p.Hand.Id,
		Cards:      cards,
		Reason:     event.ReasonDraw,
	})
}

// permutationFrom derives a permutation of [0, n) from shuffle by applying
// it to a slice of index-tagged placeholder cards — the only shuffle
// contract the engine carries (spec.md §6's seeded RandomSource shuffles
// card slices), reused here to permute non-card sequences like role
// assignment.
func permutationFrom(shuffle func([]model.Card), n int) []int {
	placeholders := make([]model.Card, n)
	for i := range placeholders {
		placeholders[i] = model.Card{Id: i}
	}
	shuffle(placeholders)
	order := make([]int, n)
	for i, c := range placeholders {
		order[i] = c.Id
	}
	return order
}

func applyPermutation(roles []model.CampId, order []int) {
	out := make([]model.CampId, len(roles))
	for i, idx := range order {
		out[i] = roles[idx]
	}
	copy(roles, out)
}
