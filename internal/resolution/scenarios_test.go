package resolution

import (
	"testing"

	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/judge"
	"legendcore/internal/model"
	"legendcore/internal/skill"
	"legendcore/internal/zone"

	"go.uber.org/zap"
)

// newTestContext wires a full Context around an n-seat game with an empty
// draw pile (tests insert exactly the cards they need), mirroring
// replay.Engine's wiring order but with a caller-supplied oracle.
func newTestContext(n int, oracle choice.Oracle) (*Context, *model.Game) {
	game := model.NewGame(n)
	bus := event.NewBus()
	mover := zone.New(game, bus)
	skillMgr := skill.NewManager(bus)
	skillProvider := skill.NewProvider(skillMgr)
	equipRegistry := skill.NewEquipmentSkillRegistry(skillMgr, bus)
	skill.RegisterBuiltinEquipment(equipRegistry)
	judgeSvc := judge.New(game, bus, mover, skillProvider, oracle)
	ctx := NewContext(game, bus, mover, zap.NewNop(), skillMgr, skillProvider, equipRegistry, judgeSvc, oracle)
	return ctx, game
}

func passOracle(req choice.ChoiceRequest) choice.ChoiceResult {
	return choice.ChoiceResult{RequestId: req.RequestId, PlayerSeat: req.PlayerSeat}
}

// TestSlashHitsWithNoResponse is spec.md §8 scenario 1: a Slash against a
// target with no Dodge results in exactly one point of normal damage, with
// the card ending in the discard pile.
func TestSlashHitsWithNoResponse(t *testing.T) {
	ctx, game := newTestContext(2, passOracle)
	attacker := game.PlayerAt(0)
	target := game.PlayerAt(1)
	slash := model.Card{Id: 1, CardSubType: model.Slash, Suit: model.Spade, Rank: 7}
	attacker.Hand.Insert([]model.Card{slash}, false)
	game.CurrentPlayerSeat = 0
	game.CurrentPhase = model.PhasePlay

	var used []event.CardUsedEvent
	var damaged []event.DamageAppliedEvent
	event.Subscribe(ctx.Bus, func(e event.CardUsedEvent) { used = append(used, e) })
	event.Subscribe(ctx.Bus, func(e event.DamageAppliedEvent) { damaged = append(damaged, e) })

	ctx.Stack.Push(UseCardResolver{SourceSeat: 0, Card: slash, TargetSeats: []int{1}})
	ctx.Stack.Run(ctx)

	if len(used) != 1 {
		t.Fatalf("expected one CardUsedEvent, got %d", len(used))
	}
	if len(damaged) != 1 || damaged[0].Amount != 1 || damaged[0].TargetSeat != 1 {
		t.Fatalf("expected one point of damage to seat 1, got %+v", damaged)
	}
	if target.CurrentHealth != target.MaxHealth-1 {
		t.Errorf("expected target health reduced by 1, got %d", target.CurrentHealth)
	}
	if game.DiscardPile.Len() != 1 || !game.DiscardPile.Contains(slash.Id) {
		t.Errorf("expected the Slash to end up in the discard pile")
	}
}

// TestRenwangShieldVetoesBlackSlash is spec.md §8 scenario 2: a black Slash
// against a Renwang Shield holder never opens a Dodge window and deals no
// damage.
func TestRenwangShieldVetoesBlackSlash(t *testing.T) {
	ctx, game := newTestContext(2, passOracle)
	attacker := game.PlayerAt(0)
	target := game.PlayerAt(1)
	shield := model.Card{Id: 1, CardSubType: model.Armor, DefinitionId: "renwang_shield", Name: "Renwang Shield"}
	target.Equipment.Insert([]model.Card{shield}, false)
	// Bound directly since EquipmentSkillRegistry only reacts to a
	// CardMoveEvent(ReasonEquip), which a direct zone Insert does not fire.
	ctx.SkillManager.Bind(target, skill.NewRenwangShield(shield, target.Seat))

	slash := model.Card{Id: 2, CardSubType: model.Slash, Suit: model.Spade, Rank: 7}
	attacker.Hand.Insert([]model.Card{slash}, false)
	game.CurrentPlayerSeat = 0
	game.CurrentPhase = model.PhasePlay

	var opened int
	var damaged int
	event.Subscribe(ctx.Bus, func(e event.ResponseWindowOpenedEvent) { opened++ })
	event.Subscribe(ctx.Bus, func(e event.DamageAppliedEvent) { damaged++ })

	ctx.Stack.Push(UseCardResolver{SourceSeat: 0, Card: slash, TargetSeats: []int{1}})
	ctx.Stack.Run(ctx)

	if opened != 0 {
		t.Errorf("expected no response window when Renwang Shield vetoes the Slash, got %d opened", opened)
	}
	if damaged != 0 {
		t.Errorf("expected no damage when Renwang Shield vetoes the Slash, got %d damage events", damaged)
	}
	if target.CurrentHealth != target.MaxHealth {
		t.Errorf("expected target health unchanged, got %d", target.CurrentHealth)
	}
}

// TestQinggangSwordIgnoresRenwangShield is spec.md §8 scenario 3: a black
// Slash sourced by a Qinggang Sword owner ignores Renwang Shield, opening a
// Dodge window and dealing damage when no Dodge is offered.
func TestQinggangSwordIgnoresRenwangShield(t *testing.T) {
	ctx, game := newTestContext(2, passOracle)
	attacker := game.PlayerAt(0)
	target := game.PlayerAt(1)

	sword := model.Card{Id: 1, CardSubType: model.Weapon, DefinitionId: "qinggang_sword", Name: "Qinggang Sword"}
	ctx.SkillManager.Bind(attacker, skill.NewQinggangSword(sword, attacker.Seat))
	shield := model.Card{Id: 2, CardSubType: model.Armor, DefinitionId: "renwang_shield", Name: "Renwang Shield"}
	ctx.SkillManager.Bind(target, skill.NewRenwangShield(shield, target.Seat))

	slash := model.Card{Id: 3, CardSubType: model.Slash, Suit: model.Spade, Rank: 7}
	attacker.Hand.Insert([]model.Card{slash}, false)
	game.CurrentPlayerSeat = 0
	game.CurrentPhase = model.PhasePlay

	var opened int
	var damaged int
	event.Subscribe(ctx.Bus, func(e event.ResponseWindowOpenedEvent) { opened++ })
	event.Subscribe(ctx.Bus, func(e event.DamageAppliedEvent) { damaged++ })

	ctx.Stack.Push(UseCardResolver{SourceSeat: 0, Card: slash, TargetSeats: []int{1}})
	ctx.Stack.Run(ctx)

	if opened != 1 {
		t.Errorf("expected the Dodge window to still open when Qinggang Sword ignores armor, got %d opened", opened)
	}
	if damaged != 1 {
		t.Errorf("expected damage to land since no Dodge was offered, got %d damage events", damaged)
	}
	if target.CurrentHealth != target.MaxHealth-1 {
		t.Errorf("expected target health reduced by 1, got %d", target.CurrentHealth)
	}
}

// TestLebusishuSkipsPlayPhase is spec.md §8 scenario 4: a failed Lebusishu
// judgement (no Heart revealed) sets SkipPlayPhase and discards the card.
func TestLebusishuSkipsPlayPhase(t *testing.T) {
	ctx, game := newTestContext(2, passOracle)
	subject := game.PlayerAt(0)
	lebusishu := model.Card{Id: 1, CardSubType: model.Lebusishu}
	subject.Judgement.Insert([]model.Card{lebusishu}, false)
	reveal := model.Card{Id: 2, Suit: model.Spade, Rank: 5}
	game.DrawPile.Insert([]model.Card{reveal}, true)

	ctx.Stack.Push(DelayedTrickJudgementResolver{Seat: 0})
	ctx.Stack.Run(ctx)

	if !subject.Flag("SkipPlayPhase") {
		t.Error("expected a failed Lebusishu judgement to set SkipPlayPhase")
	}
	if subject.Judgement.Len() != 0 {
		t.Errorf("expected the Lebusishu card to leave the judgement zone, got %d remaining", subject.Judgement.Len())
	}
	if !game.DiscardPile.Contains(lebusishu.Id) {
		t.Error("expected the Lebusishu card to end up in the discard pile")
	}
}

// TestShandianFailurePassesToNextPlayer is spec.md §8 scenario 5 (failure
// branch): a Shandian judgement that does not reveal a Spade 2-9 passes,
// unjudged, to the next alive player's judgement zone.
func TestShandianFailurePassesToNextPlayer(t *testing.T) {
	ctx, game := newTestContext(3, passOracle)
	subject := game.PlayerAt(0)
	shandian := model.Card{Id: 1, CardSubType: model.Shandian}
	subject.Judgement.Insert([]model.Card{shandian}, false)
	reveal := model.Card{Id: 2, Suit: model.Heart, Rank: 5}
	game.DrawPile.Insert([]model.Card{reveal}, true)

	ctx.Stack.Push(DelayedTrickJudgementResolver{Seat: 0})
	ctx.Stack.Run(ctx)

	if subject.Judgement.Len() != 0 {
		t.Errorf("expected Shandian to leave seat 0's judgement zone, got %d remaining", subject.Judgement.Len())
	}
	next := game.PlayerAt(1)
	if !next.Judgement.Contains(shandian.Id) {
		t.Error("expected the unjudged Shandian to move to seat 1's judgement zone")
	}
}

// TestShandianSuccessDealsThunderDamage is spec.md §8 scenario 5 (success
// branch): a Spade 2-9 reveal deals 3 Thunder damage and discards the card.
func TestShandianSuccessDealsThunderDamage(t *testing.T) {
	ctx, game := newTestContext(2, passOracle)
	subject := game.PlayerAt(0)
	subject.MaxHealth = 5
	subject.CurrentHealth = 5
	shandian := model.Card{Id: 1, CardSubType: model.Shandian}
	subject.Judgement.Insert([]model.Card{shandian}, false)
	reveal := model.Card{Id: 2, Suit: model.Spade, Rank: 5}
	game.DrawPile.Insert([]model.Card{reveal}, true)

	var damaged []event.DamageAppliedEvent
	event.Subscribe(ctx.Bus, func(e event.DamageAppliedEvent) { damaged = append(damaged, e) })

	ctx.Stack.Push(DelayedTrickJudgementResolver{Seat: 0})
	ctx.Stack.Run(ctx)

	if len(damaged) != 1 || damaged[0].Amount != 3 || damaged[0].Type != model.Thunder {
		t.Fatalf("expected 3 Thunder damage, got %+v", damaged)
	}
	if subject.CurrentHealth != 2 {
		t.Errorf("expected health reduced to 2, got %d", subject.CurrentHealth)
	}
	if !game.DiscardPile.Contains(shandian.Id) {
		t.Error("expected Shandian to be discarded after resolving successfully")
	}
}

// TestJieDaoShaRenTransfersWeaponOnDecline is spec.md §8 scenario 6: when
// the weapon owner has no Slash to offer (or declines), their weapon moves
// to the caster's hand rather than the discard pile.
func TestJieDaoShaRenTransfersWeaponOnDecline(t *testing.T) {
	ctx, game := newTestContext(3, passOracle)
	caster := game.PlayerAt(0)
	weaponOwner := game.PlayerAt(1)
	victim := game.PlayerAt(2)
	weapon := model.Card{Id: 1, CardSubType: model.Weapon, Name: "Blade"}
	weaponOwner.Equipment.Insert([]model.Card{weapon}, false)

	ctx.Stack.Push(JieDaoShaRenResolver{SourceSeat: caster.Seat, WeaponOwnerSeat: weaponOwner.Seat, VictimSeat: victim.Seat})
	ctx.Stack.Run(ctx)

	if weaponOwner.Equipment.Len() != 0 {
		t.Errorf("expected the weapon to leave the owner's equipment, got %d remaining", weaponOwner.Equipment.Len())
	}
	if !caster.Hand.Contains(weapon.Id) {
		t.Error("expected the weapon to be moved to the caster's hand, not discarded")
	}
	if game.DiscardPile.Contains(weapon.Id) {
		t.Error("expected the weapon to NOT be discarded")
	}
}

// TestDamageResolverZeroAmountStillPublishesEvent is one of spec.md §8's
// boundary behaviors: a zero-amount DamageResolver still fires
// DamageAppliedEvent even though it is a no-op on health.
func TestDamageResolverZeroAmountStillPublishesEvent(t *testing.T) {
	ctx, game := newTestContext(1, passOracle)
	target := game.PlayerAt(0)
	before := target.CurrentHealth

	var fired int
	event.Subscribe(ctx.Bus, func(e event.DamageAppliedEvent) { fired++ })

	ctx.Stack.Push(DamageResolver{SourceSeat: 0, TargetSeat: 0, Amount: 0, Type: model.Normal, Cause: "test"})
	ctx.Stack.Run(ctx)

	if fired != 1 {
		t.Errorf("expected DamageAppliedEvent to fire even for zero damage, got %d", fired)
	}
	if target.CurrentHealth != before {
		t.Errorf("expected health unchanged by zero damage, got %d want %d", target.CurrentHealth, before)
	}
}
