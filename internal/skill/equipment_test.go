package skill

import (
	"testing"

	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

func newRegistryFixture() (*model.Game, *zone.CardMoveService, *Manager, *EquipmentSkillRegistry) {
	game := model.NewGame(2)
	bus := event.NewBus()
	mover := zone.New(game, bus)
	mgr := NewManager(bus)
	registry := NewEquipmentSkillRegistry(mgr, bus)
	RegisterBuiltinEquipment(registry)
	return game, mover, mgr, registry
}

func TestEquipmentRegistryBindsOnEquipMove(t *testing.T) {
	game, mover, mgr, _ := newRegistryFixture()
	owner := game.PlayerAt(0)
	sword := model.Card{Id: 1, DefinitionId: "qinggang_sword", CardSubType: model.Weapon}
	owner.Hand.Insert([]model.Card{sword}, false)

	if err := mover.Move(zone.Descriptor{
		SourceZone: owner.Hand.Id,
		TargetZone: owner.Equipment.Id,
		Cards:      []model.Card{sword},
		Reason:     event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error equipping: %v", err)
	}

	bound := mgr.SkillsOf(owner.Seat)
	if len(bound) != 1 || bound[0].Id != "equip.qinggang_sword" {
		t.Fatalf("expected Qinggang Sword bound to seat %d, got %+v", owner.Seat, bound)
	}
}

func TestEquipmentRegistryUnbindsOnUnequipMove(t *testing.T) {
	game, mover, mgr, _ := newRegistryFixture()
	owner := game.PlayerAt(0)
	shield := model.Card{Id: 2, DefinitionId: "renwang_shield", CardSubType: model.Armor}
	owner.Hand.Insert([]model.Card{shield}, false)
	if err := mover.Move(zone.Descriptor{
		SourceZone: owner.Hand.Id,
		TargetZone: owner.Equipment.Id,
		Cards:      []model.Card{shield},
		Reason:     event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error equipping: %v", err)
	}
	if len(mgr.SkillsOf(owner.Seat)) != 1 {
		t.Fatalf("expected the shield bound before testing unequip")
	}

	if err := mover.Move(zone.Descriptor{
		SourceZone: owner.Equipment.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{shield},
		Reason:     event.ReasonUnequip,
	}); err != nil {
		t.Fatalf("unexpected error unequipping: %v", err)
	}

	if bound := mgr.SkillsOf(owner.Seat); len(bound) != 0 {
		t.Errorf("expected no skills bound after unequip, got %+v", bound)
	}
}

// TestEquipmentRegistryDisplacementUnbindsDisplacedWeapon exercises
// CardMoveService's own sub-slot displacement (zone.move.go's
// displaceOccupants): equipping a second weapon discards the first one via
// a nested Unequip move, which the registry must also react to.
func TestEquipmentRegistryDisplacementUnbindsDisplacedWeapon(t *testing.T) {
	game, mover, mgr, _ := newRegistryFixture()
	owner := game.PlayerAt(0)
	first := model.Card{Id: 1, DefinitionId: "qinggang_sword", CardSubType: model.Weapon}
	second := model.Card{Id: 2, DefinitionId: "generic_blade", CardSubType: model.Weapon}
	owner.Hand.Insert([]model.Card{first, second}, false)

	if err := mover.Move(zone.Descriptor{
		SourceZone: owner.Hand.Id, TargetZone: owner.Equipment.Id,
		Cards: []model.Card{first}, Reason: event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error equipping first weapon: %v", err)
	}
	if err := mover.Move(zone.Descriptor{
		SourceZone: owner.Hand.Id, TargetZone: owner.Equipment.Id,
		Cards: []model.Card{second}, Reason: event.ReasonEquip,
	}); err != nil {
		t.Fatalf("unexpected error equipping second weapon: %v", err)
	}

	bound := mgr.SkillsOf(owner.Seat)
	if len(bound) != 1 || bound[0].Id != "equip.weapon.generic_blade" {
		t.Fatalf("expected only the displacing weapon's skill bound, got %+v", bound)
	}
	if owner.Equipment.Len() != 1 {
		t.Errorf("expected exactly one weapon in the equipment zone, got %d", owner.Equipment.Len())
	}
	if !game.DiscardPile.Contains(first.Id) {
		t.Error("expected the displaced weapon to land in the discard pile")
	}
}

func TestProviderAggregatesAcrossMultipleBoundSkills(t *testing.T) {
	game, mover, mgr, _ := newRegistryFixture()
	owner := game.PlayerAt(0)
	sword := model.Card{Id: 1, DefinitionId: "qinggang_sword", CardSubType: model.Weapon}
	horse := model.Card{Id: 2, CardSubType: model.OffensiveHorse}
	owner.Hand.Insert([]model.Card{sword, horse}, false)

	for _, c := range []model.Card{sword, horse} {
		if err := mover.Move(zone.Descriptor{
			SourceZone: owner.Hand.Id, TargetZone: owner.Equipment.Id,
			Cards: []model.Card{c}, Reason: event.ReasonEquip,
		}); err != nil {
			t.Fatalf("unexpected error equipping: %v", err)
		}
	}

	provider := NewProvider(mgr)
	target := game.PlayerAt(1)
	// Offensive horse reduces owner-to-target distance by 1 (floored at 1
	// elsewhere); Qinggang Sword adds +1 attack distance for the owner.
	gotSeatDistance := provider.ModifySeatDistance(owner, target, 3)
	if gotSeatDistance != 2 {
		t.Errorf("expected the offensive horse to shave 1 off seat distance, got %d", gotSeatDistance)
	}
	gotAttackDistance := provider.ModifyAttackDistance(owner, target, 1)
	if gotAttackDistance != 2 {
		t.Errorf("expected Qinggang Sword to add 1 to attack distance, got %d", gotAttackDistance)
	}
}
