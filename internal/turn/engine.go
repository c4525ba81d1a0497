// Package turn implements the per-player phase state machine of spec.md
// §4.4: Start -> Judge -> Draw -> Play -> Discard -> End, with the
// per-player SkipPlayPhase flag and the Judge-phase delayed-trick hook.
//
// Grounded on the teacher's Phase enum plus app/service.go's turn-
// advancement fragments (CurrentTurn, clockwise seat stepping over alive
// players) — generalized from Tien Len's single-phase turn to a six-phase
// state machine.
package turn

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/resolution"
	"legendcore/internal/zone"
)

// drawPhaseCount is how many cards a player draws at the start of
// their own Draw phase, per spec.md §4.4.
const drawPhaseCount = 2

// handLimitOf returns the hand-size limit enforced at Discard phase: a
// player may hold at most as many cards as their current health.
func handLimitOf(p *model.Player) int {
	if p.CurrentHealth < 0 {
		return 0
	}
	return p.CurrentHealth
}

// ActionLoop drives a player's Play phase: it is called repeatedly and
// should push at most one UseCardResolver per call, returning false once
// the player has no further action (a "pass"); after every call that
// returns true, the Play phase runs ctx.Stack.Run itself.
type ActionLoop func(ctx *resolution.Context, actor *model.Player) bool

// Engine runs one full turn for a seat.
type Engine struct {
	ReshuffleOnEmptyDraw bool
	// Shuffle reorders a reshuffled discard pile in place before it becomes
	// the new draw pile. Nil means no shuffle (deterministic but
	// order-revealing) — replay.Engine wires in its seeded RNG here.
	Shuffle func([]model.Card)
}

// RunTurn advances seat through every phase of its turn, calling loop
// repeatedly during Play, then returns.
func (e Engine) RunTurn(ctx *resolution.Context, seat int, loop ActionLoop) {
	game := ctx.Game
	actor := game.PlayerAt(seat)
	if actor == nil || !actor.IsAlive {
		return
	}
	game.CurrentPlayerSeat = seat
	game.TurnNumber++
	actor.ResetUsageCounts()

	event.Publish(ctx.Bus, event.TurnStart{TurnNumber: game.TurnNumber, Seat: seat})
	e.runStart(ctx, actor)
	e.runJudge(ctx, actor)
	e.runDraw(ctx, actor)
	e.runPlay(ctx, actor, loop)
	e.runDiscard(ctx, actor)
	e.runEnd(ctx, actor)
	event.Publish(ctx.Bus, event.TurnEnd{TurnNumber: game.TurnNumber, Seat: seat})
}

func (e Engine) runStart(ctx *resolution.Context, actor *model.Player) {
	ctx.Game.CurrentPhase = model.PhaseStart
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhaseStart})
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhaseStart})
}

// runJudge pushes one DelayedTrickJudgementResolver per card that sits in
// the actor's Judgement zone at the moment Judge phase begins, top to
// bottom, per spec.md §4.4 — snapshotting the count up front since
// resolving the top card (Shandian passing itself along, for instance) can
// change the zone's contents mid-phase.
func (e Engine) runJudge(ctx *resolution.Context, actor *model.Player) {
	ctx.Game.CurrentPhase = model.PhaseJudge
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhaseJudge})
	pending := actor.Judgement.Len()
	for i := 0; i < pending; i++ {
		if actor.Judgement.Len() == 0 {
			break
		}
		ctx.Stack.Push(resolution.DelayedTrickJudgementResolver{Seat: actor.Seat})
		ctx.Stack.Run(ctx)
	}
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhaseJudge})
}

func (e Engine) runDraw(ctx *resolution.Context, actor *model.Player) {
	ctx.Game.CurrentPhase = model.PhaseDraw
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhaseDraw})
	for i := 0; i < drawPhaseCount; i++ {
		if ctx.Game.DrawPile.Len() == 0 {
			if !e.ReshuffleOnEmptyDraw {
				break
			}
			e.reshuffleDiscardIntoDraw(ctx)
			if ctx.Game.DrawPile.Len() == 0 {
				break
			}
		}
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
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhaseDraw})
}

// runPlay honors spec.md §4.4's skip rule literally: when SkipPlayPhase is
// set, Play is skipped entirely and its PhaseStart/PhaseEnd events are not
// published at all, not merely run with no actions.
func (e Engine) runPlay(ctx *resolution.Context, actor *model.Player, loop ActionLoop) {
	ctx.Game.CurrentPhase = model.PhasePlay
	if actor.Flag("SkipPlayPhase") {
		actor.ClearFlag("SkipPlayPhase")
		return
	}
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhasePlay})
	if loop != nil {
		for loop(ctx, actor) {
			ctx.Stack.Run(ctx)
		}
	}
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhasePlay})
}

func (e Engine) runDiscard(ctx *resolution.Context, actor *model.Player) {
	ctx.Game.CurrentPhase = model.PhaseDiscard
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhaseDiscard})
	limit := handLimitOf(actor)
	for actor.Hand.Len() > limit {
		allowed := make([]int, 0, actor.Hand.Len())
		for _, c := range actor.Hand.Cards {
			allowed = append(allowed, c.Id)
		}
		result := ctx.GetPlayerChoice(choice.ChoiceRequest{
			RequestId:    choice.NewRequestId(),
			PlayerSeat:   actor.Seat,
			ChoiceType:   choice.SelectCards,
			AllowedCards: allowed,
			DisplayKey:   "discard.over_hand_limit",
		})
		if len(result.SelectedCardIds) == 0 {
			break
		}
		cards := make([]model.Card, 0, len(result.SelectedCardIds))
		for _, id := range result.SelectedCardIds {
			if i := actor.Hand.IndexOf(id); i >= 0 {
				cards = append(cards, actor.Hand.Cards[i])
			}
		}
		if len(cards) == 0 {
			break
		}
		_ = ctx.Mover.Move(zone.Descriptor{
			SourceZone: actor.Hand.Id,
			TargetZone: model.DiscardPileZone,
			Cards:      cards,
			Reason:     event.ReasonDiscard,
		})
	}
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhaseDiscard})
}

func (e Engine) runEnd(ctx *resolution.Context, actor *model.Player) {
	ctx.Game.CurrentPhase = model.PhaseEnd
	event.Publish(ctx.Bus, event.PhaseStart{Seat: actor.Seat, Phase: model.PhaseEnd})
	event.Publish(ctx.Bus, event.PhaseEnd{Seat: actor.Seat, Phase: model.PhaseEnd})
}

// reshuffleDiscardIntoDraw moves every discard-pile card back into the draw
// pile when the draw pile empties mid-draw, per SPEC_FULL.md §6's
// `GameVariantOptions["reshuffleOnEmptyDraw"]` resolution of spec.md §9.
func (e Engine) reshuffleDiscardIntoDraw(ctx *resolution.Context) {
	zone.ReshuffleDiscardIntoDraw(ctx.Mover, ctx.Game, e.Shuffle)
}
