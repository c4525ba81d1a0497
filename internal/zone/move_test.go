package zone

import (
	"testing"

	"legendcore/internal/event"
	"legendcore/internal/model"
)

func newMoveFixture(n int) (*model.Game, *CardMoveService, *event.Bus) {
	game := model.NewGame(n)
	bus := event.NewBus()
	return game, New(game, bus), bus
}

func TestMoveBasicTransferBetweenZones(t *testing.T) {
	game, mover, bus := newMoveFixture(2)
	actor := game.PlayerAt(0)
	c := model.Card{Id: 1, Suit: model.Heart, Rank: 3}
	actor.Hand.Insert([]model.Card{c}, false)

	var before, after []event.CardMoveEvent
	event.Subscribe(bus, func(e event.CardMoveEvent) {
		if e.Timing == event.Before {
			before = append(before, e)
		} else {
			after = append(after, e)
		}
	})

	err := mover.Move(Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{c},
		Reason:     event.ReasonDiscard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actor.Hand.Contains(c.Id) {
		t.Error("expected the card to have left the hand")
	}
	if !game.DiscardPile.Contains(c.Id) {
		t.Error("expected the card to have landed in the discard pile")
	}
	if len(before) != 1 || len(after) != 1 {
		t.Fatalf("expected exactly one Before and one After event, got %d/%d", len(before), len(after))
	}
	if before[0].Reason != event.ReasonDiscard || after[0].Reason != event.ReasonDiscard {
		t.Error("expected both events to carry the move's Reason")
	}
}

func TestMoveOrderingToTopVsToBottom(t *testing.T) {
	game, mover, _ := newMoveFixture(2)
	game.DiscardPile.Insert([]model.Card{{Id: 100}}, false)
	actor := game.PlayerAt(0)
	c := model.Card{Id: 1}
	actor.Hand.Insert([]model.Card{c}, false)

	if err := mover.Move(Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{c},
		Reason:     event.ReasonDiscard,
		Ordering:   ToTop,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := game.DiscardPile.Top()
	if !ok || top.Id != c.Id {
		t.Errorf("expected the moved card on top, got %+v ok=%v", top, ok)
	}
}

func TestMoveInvalidSourceCardReturnsErrorAndMutatesNothing(t *testing.T) {
	game, mover, _ := newMoveFixture(2)
	actor := game.PlayerAt(0)
	handBefore := actor.Hand.Len()
	discardBefore := game.DiscardPile.Len()

	err := mover.Move(Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{{Id: 999}},
		Reason:     event.ReasonDiscard,
	})
	if err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if actor.Hand.Len() != handBefore || game.DiscardPile.Len() != discardBefore {
		t.Error("expected no zone mutation on a failed move")
	}
}

func TestMoveUnknownZoneReturnsError(t *testing.T) {
	_, mover, _ := newMoveFixture(2)
	err := mover.Move(Descriptor{
		SourceZone: model.ZoneId("Hand_99"),
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{{Id: 1}},
		Reason:     event.ReasonDiscard,
	})
	if err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState for an unknown zone, got %v", err)
	}
}

// TestMoveDisplacesOccupyingEquipmentOfTheSameSubSlot is the zone-level half
// of the equip-displacement rule: moving a second Weapon into an occupied
// equipment zone discards the first occupant via a nested Move.
func TestMoveDisplacesOccupyingEquipmentOfTheSameSubSlot(t *testing.T) {
	game, mover, bus := newMoveFixture(2)
	actor := game.PlayerAt(0)
	first := model.Card{Id: 1, CardSubType: model.Weapon}
	second := model.Card{Id: 2, CardSubType: model.Weapon}
	actor.Equipment.Insert([]model.Card{first}, false)
	actor.Hand.Insert([]model.Card{second}, false)

	var unequipSeen bool
	event.Subscribe(bus, func(e event.CardMoveEvent) {
		if e.Reason == event.ReasonUnequip && e.Timing == event.After {
			unequipSeen = true
		}
	})

	if err := mover.Move(Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: actor.Equipment.Id,
		Cards:      []model.Card{second},
		Reason:     event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !unequipSeen {
		t.Error("expected a nested Unequip move to have displaced the occupant")
	}
	if actor.Equipment.Len() != 1 || actor.Equipment.Cards[0].Id != second.Id {
		t.Errorf("expected only the new weapon equipped, got %+v", actor.Equipment.Cards)
	}
	if !game.DiscardPile.Contains(first.Id) {
		t.Error("expected the displaced weapon in the discard pile")
	}
}

// TestMoveDoesNotDisplaceDifferentSubSlots confirms a Horse doesn't bump a
// Weapon out of the equipment zone.
func TestMoveDoesNotDisplaceDifferentSubSlots(t *testing.T) {
	game, mover, _ := newMoveFixture(2)
	actor := game.PlayerAt(0)
	weapon := model.Card{Id: 1, CardSubType: model.Weapon}
	horse := model.Card{Id: 2, CardSubType: model.OffensiveHorse}
	actor.Equipment.Insert([]model.Card{weapon}, false)
	actor.Hand.Insert([]model.Card{horse}, false)

	if err := mover.Move(Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: actor.Equipment.Id,
		Cards:      []model.Card{horse},
		Reason:     event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actor.Equipment.Len() != 2 {
		t.Errorf("expected both the weapon and the horse equipped, got %d cards", actor.Equipment.Len())
	}
	if game.DiscardPile.Len() != 0 {
		t.Errorf("expected no displacement, discard pile has %d cards", game.DiscardPile.Len())
	}
}
