package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/judge"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// DelayedTrickJudgementResolver runs at a player's Judge phase: if a
// delayed trick sits in their judgement zone, it is judged and resolved.
// Lebusishu sets SkipPlayPhase on failure (Heart not revealed) and is
// always discarded after one judgement. Shandian deals 3 thunder damage and
// is discarded when the reveal is a Spade ranked 2-9; otherwise it passes,
// unjudged, to the next alive player's judgement zone.
type DelayedTrickJudgementResolver struct {
	Seat int
}

func (DelayedTrickJudgementResolver) Name() string { return "DelayedTrickJudgement" }

func (r DelayedTrickJudgementResolver) Resolve(ctx *Context) ResolutionErrorCode {
	player := ctx.Game.PlayerAt(r.Seat)
	if player == nil || player.Judgement.Len() == 0 {
		return Success
	}
	card, ok := player.Judgement.Top()
	if !ok {
		return Success
	}

	switch card.CardSubType {
	case model.Lebusishu:
		result := ctx.Judge.Run(judge.JudgementRequest{Subject: player, Predicate: judge.Suit(model.Heart)})
		r.discard(ctx, player, card)
		if !result.Passed {
			player.SetFlag("SkipPlayPhase", true)
		}
	case model.Shandian:
		result := ctx.Judge.Run(judge.JudgementRequest{
			Subject:   player,
			Predicate: judge.And(judge.Suit(model.Spade), judge.RankRange(2, 9)),
		})
		if result.Passed {
			r.discard(ctx, player, card)
			ctx.Stack.Push(DamageResolver{SourceSeat: r.Seat, TargetSeat: r.Seat, Amount: 3, Type: model.Thunder, Cause: "Shandian"})
		} else {
			next := ctx.Game.ClockwiseFrom(r.Seat, false)
			if len(next) == 0 {
				r.discard(ctx, player, card)
				break
			}
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: player.Judgement.Id,
				TargetZone: next[0].Judgement.Id,
				Cards:      []model.Card{card},
				Reason:     event.ReasonTransfer,
			})
		}
	}
	return Success
}

func (DelayedTrickJudgementResolver) discard(ctx *Context, player *model.Player, card model.Card) {
	_ = ctx.Mover.Move(zone.Descriptor{
		SourceZone: player.Judgement.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{card},
		Reason:     event.ReasonDiscard,
	})
}
