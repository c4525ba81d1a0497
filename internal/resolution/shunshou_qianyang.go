package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// ShunshouQianyangResolver moves one card of source's choosing from target's
// hand directly into source's hand.
type ShunshouQianyangResolver struct {
	SourceSeat int
	TargetSeat int
}

func (ShunshouQianyangResolver) Name() string { return "ShunshouQianyang" }

func (r ShunshouQianyangResolver) Resolve(ctx *Context) ResolutionErrorCode {
	actor := ctx.Game.PlayerAt(r.SourceSeat)
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if actor == nil || target == nil {
		return InvalidState
	}
	card, owningZone, ok := pickCardFromZones(ctx, actor.Seat, []*model.Zone{target.Hand})
	if !ok {
		return InvalidTarget
	}
	_ = ctx.Mover.Move(zone.Descriptor{
		SourceZone: owningZone.Id,
		TargetZone: actor.Hand.Id,
		Cards:      []model.Card{card},
		Reason:     event.ReasonTransfer,
	})
	return Success
}
