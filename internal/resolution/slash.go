package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/skill"
	"legendcore/internal/zone"
)

// SlashResolver resolves one Slash effect against a single target: general
// effectiveness veto, armor veto (unless ignored), a Dodge response window,
// then damage.
type SlashResolver struct {
	SourceSeat int
	TargetSeat int
	Card       model.Card
}

func (SlashResolver) Name() string { return "Slash" }

func (r SlashResolver) Resolve(ctx *Context) ResolutionErrorCode {
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if target == nil || !target.IsAlive {
		return TargetNotAlive
	}
	effectCtx := skill.EffectContext{Game: ctx.Game, SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeat, Card: r.Card}

	if ctx.SkillProvider != nil {
		if ok, _ := ctx.SkillProvider.IsEffective(effectCtx); !ok {
			return Success
		}
		if !ctx.SkillProvider.ShouldIgnoreArmor(effectCtx) && ctx.SkillProvider.ShouldVetoEffect(r.TargetSeat, effectCtx) {
			return Success
		}
	}

	dodgeWindow := response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice}
	dodgeResult := dodgeWindow.Poll(ctx.Game, "Dodge", []*model.Player{target}, rules.ResponseContext{RequiredSubType: model.Dodge})
	if dodgeResult.Responded {
		_ = ctx.Mover.Move(zone.Descriptor{
			SourceZone: target.Hand.Id,
			TargetZone: model.DiscardPileZone,
			Cards:      []model.Card{dodgeResult.Card},
			Reason:     event.ReasonDiscard,
		})
		return Success
	}

	ctx.Stack.Push(DamageResolver{SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeat, Amount: 1, Type: model.Normal, Cause: "Slash"})
	return Success
}
