package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// NanmanRushinResolver ("Barbarian Invasion") asks every other alive
// player, in seat order, for a Slash; anyone who fails to offer one takes 1
// normal damage.
type NanmanRushinResolver struct {
	SourceSeat int
}

func (NanmanRushinResolver) Name() string { return "NanmanRushin" }

func (r NanmanRushinResolver) Resolve(ctx *Context) ResolutionErrorCode {
	window := response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice}
	for _, target := range ctx.Game.ClockwiseFrom(r.SourceSeat, false) {
		result := window.Poll(ctx.Game, "Slash", []*model.Player{target}, rules.ResponseContext{RequiredSubType: model.Slash})
		if result.Responded {
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: target.Hand.Id,
				TargetZone: model.DiscardPileZone,
				Cards:      []model.Card{result.Card},
				Reason:     event.ReasonDiscard,
			})
			continue
		}
		ctx.Stack.Push(DamageResolver{SourceSeat: r.SourceSeat, TargetSeat: target.Seat, Amount: 1, Type: model.Normal, Cause: "NanmanRushin"})
	}
	return Success
}
