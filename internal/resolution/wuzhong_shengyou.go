package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// WuzhongShengyouResolver draws two cards from the draw pile into the
// source player's hand.
type WuzhongShengyouResolver struct {
	SourceSeat int
}

func (WuzhongShengyouResolver) Name() string { return "WuzhongShengyou" }

func (r WuzhongShengyouResolver) Resolve(ctx *Context) ResolutionErrorCode {
	actor := ctx.Game.PlayerAt(r.SourceSeat)
	if actor == nil {
		return InvalidState
	}
	for i := 0; i < 2; i++ {
		top, ok := ctx.Game.DrawPile.Top()
		if !ok {
			break
		}
		_ = ctx.Mover.Move(zone.Descriptor{
			SourceZone: ctx.Game.DrawPile.Id,
			TargetZone: actor.Hand.Id,
			Cards:      []model.Card{top},
			Reason:     event.ReasonDraw,
		})
	}
	return Success
}
