package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// JieDaoShaRenResolver ("Borrow a Sword to Kill") asks WeaponOwnerSeat to
// play a Slash against VictimSeat; if declined (including when they hold no
// Slash to offer), WeaponOwnerSeat's equipped weapon is instead moved to
// SourceSeat's (the caster's) hand, per spec.md §8 scenario 6 — not
// discarded.
type JieDaoShaRenResolver struct {
	SourceSeat      int
	WeaponOwnerSeat int
	VictimSeat      int
}

func (JieDaoShaRenResolver) Name() string { return "JieDaoShaRen" }

func (r JieDaoShaRenResolver) Resolve(ctx *Context) ResolutionErrorCode {
	weaponOwner := ctx.Game.PlayerAt(r.WeaponOwnerSeat)
	if weaponOwner == nil {
		return InvalidState
	}

	// Re-check VictimSeat's legality at resolution time (spec.md §4.7's
	// double-legality check): if they died or moved out of range since
	// selection, WeaponOwnerSeat is never polled for a Slash and the
	// transfer triggers as if they had declined.
	victim := ctx.Game.PlayerAt(r.VictimSeat)
	victimStillLegal := victim != nil && victim.IsAlive &&
		ctx.Range.IsWithinAttackRange(ctx.Game, r.WeaponOwnerSeat, r.VictimSeat)

	if victimStillLegal {
		window := response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice}
		result := window.Poll(ctx.Game, "Slash", []*model.Player{weaponOwner}, rules.ResponseContext{RequiredSubType: model.Slash})
		if result.Responded {
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: weaponOwner.Hand.Id,
				TargetZone: model.DiscardPileZone,
				Cards:      []model.Card{result.Card},
				Reason:     event.ReasonPlay,
			})
			ctx.Stack.Push(SlashResolver{SourceSeat: r.WeaponOwnerSeat, TargetSeat: r.VictimSeat, Card: result.Card})
			return Success
		}
	}

	weapon, ok := weaponOwner.EquippedSubType(model.Weapon)
	if !ok {
		return Success
	}
	caster := ctx.Game.PlayerAt(r.SourceSeat)
	if caster == nil {
		return InvalidState
	}
	_ = ctx.Mover.Move(zone.Descriptor{
		SourceZone: weaponOwner.Equipment.Id,
		TargetZone: caster.Hand.Id,
		Cards:      []model.Card{weapon},
		Reason:     event.ReasonUnequip,
	})
	return Success
}
