package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// DelayedTrickResolver moves a delayed trick card (Lebusishu, Shandian) from
// source's hand into target's judgement zone, where it waits until that
// target's next Judge phase.
type DelayedTrickResolver struct {
	SourceSeat int
	TargetSeat int
	Card       model.Card
}

func (DelayedTrickResolver) Name() string { return "DelayedTrick" }

func (r DelayedTrickResolver) Resolve(ctx *Context) ResolutionErrorCode {
	actor := ctx.Game.PlayerAt(r.SourceSeat)
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if actor == nil || target == nil {
		return InvalidState
	}
	if err := ctx.Mover.Move(zone.Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: target.Judgement.Id,
		Cards:      []model.Card{r.Card},
		Reason:     event.ReasonPlay,
	}); err != nil {
		return InvalidState
	}
	return Success
}
