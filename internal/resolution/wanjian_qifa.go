package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// WanjianqifaResolver ("A Sky Full of Arrows") asks every other alive
// player, in seat order, for a Dodge; anyone who fails to offer one takes 1
// normal damage.
type WanjianqifaResolver struct {
	SourceSeat int
}

func (WanjianqifaResolver) Name() string { return "WanjianQifa" }

func (r WanjianqifaResolver) Resolve(ctx *Context) ResolutionErrorCode {
	window := response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice}
	for _, target := range ctx.Game.ClockwiseFrom(r.SourceSeat, false) {
		result := window.Poll(ctx.Game, "Dodge", []*model.Player{target}, rules.ResponseContext{RequiredSubType: model.Dodge})
		if result.Responded {
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: target.Hand.Id,
				TargetZone: model.DiscardPileZone,
				Cards:      []model.Card{result.Card},
				Reason:     event.ReasonDiscard,
			})
			continue
		}
		ctx.Stack.Push(DamageResolver{SourceSeat: r.SourceSeat, TargetSeat: target.Seat, Amount: 1, Type: model.Normal, Cause: "WanjianQifa"})
	}
	return Success
}
