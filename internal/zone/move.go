// Package zone implements CardMoveService, the sole authority for
// transferring cards between zones (spec.md §4.1). It is grounded on the
// teacher's domain.RemoveCards / app.Service.PlayCards pattern of
// "validate fully, then mutate, then build the event list" generalized
// from a single hand-to-discard move to an arbitrary zone-to-zone mover.
package zone

import (
	"strings"

	"legendcore/internal/event"
	"legendcore/internal/model"
)

// Ordering selects which end of the target zone newly-moved cards land on.
type Ordering int

const (
	ToTop Ordering = iota
	ToBottom
)

// Descriptor fully describes one move request, per spec.md §4.1.
type Descriptor struct {
	SourceZone model.ZoneId
	TargetZone model.ZoneId
	Cards      []model.Card
	Reason     event.MoveReason
	Ordering   Ordering
}

// CardMoveService is the only mutator of zones. It holds a reference to the
// Game (for zone lookup) and the Bus (to emit CardMoveEvent Before/After).
type CardMoveService struct {
	game *model.Game
	bus  *event.Bus
}

// New constructs a CardMoveService bound to one game/bus pair.
func New(game *model.Game, bus *event.Bus) *CardMoveService {
	return &CardMoveService{game: game, bus: bus}
}

// Move performs descriptor's transfer. On success every card in
// descriptor.Cards has left SourceZone and entered TargetZone, in input
// order, landing at the end Ordering selects. On failure (a card missing
// from SourceZone) no zone is mutated and ErrInvalidState is returned.
//
// If TargetZone is an equipment zone and already holds a card of the same
// equip sub-slot as an incoming card, the occupant is first displaced to
// DiscardPile via a nested Move (Reason=Unequip) that emits its own
// Before/After events, per spec.md §4.1's equipment-insertion rule.
func (s *CardMoveService) Move(d Descriptor) error {
	src, ok := s.game.ZoneByID(d.SourceZone)
	if !ok {
		return ErrInvalidState
	}
	dst, ok := s.game.ZoneByID(d.TargetZone)
	if !ok {
		return ErrInvalidState
	}
	for _, c := range d.Cards {
		if !src.Contains(c.Id) {
			return ErrInvalidState
		}
	}

	// Equipment sub-slot displacement happens before the Before event of
	// the primary move, as its own complete nested move.
	if isEquipmentZone(d.TargetZone) {
		if err := s.displaceOccupants(dst, d.Cards); err != nil {
			return err
		}
	}

	event.Publish(s.bus, event.CardMoveEvent{
		Timing: event.Before,
		Source: d.SourceZone,
		Target: d.TargetZone,
		Cards:  append([]model.Card{}, d.Cards...),
		Reason: d.Reason,
	})

	moved := make([]model.Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		moved = append(moved, src.RemoveById(c.Id))
	}
	dst.Insert(moved, d.Ordering == ToTop)

	event.Publish(s.bus, event.CardMoveEvent{
		Timing: event.After,
		Source: d.SourceZone,
		Target: d.TargetZone,
		Cards:  append([]model.Card{}, moved...),
		Reason: d.Reason,
	})

	return nil
}

// displaceOccupants moves any card already in dst whose equip sub-slot
// collides with an incoming card's sub-slot to the discard pile.
func (s *CardMoveService) displaceOccupants(dst *model.Zone, incoming []model.Card) error {
	wantSlots := map[model.CardSubType]bool{}
	for _, c := range incoming {
		if slot, ok := c.CardSubType.EquipSlot(); ok {
			wantSlots[slot] = true
		}
	}
	if len(wantSlots) == 0 {
		return nil
	}
	var occupants []model.Card
	for _, c := range dst.Cards {
		if slot, ok := c.CardSubType.EquipSlot(); ok && wantSlots[slot] {
			occupants = append(occupants, c)
		}
	}
	for _, occ := range occupants {
		if err := s.Move(Descriptor{
			SourceZone: dst.Id,
			TargetZone: model.DiscardPileZone,
			Cards:      []model.Card{occ},
			Reason:     event.ReasonUnequip,
			Ordering:   ToTop,
		}); err != nil {
			return err
		}
	}
	return nil
}

func isEquipmentZone(id model.ZoneId) bool {
	return strings.HasPrefix(string(id), "Equipment_")
}
