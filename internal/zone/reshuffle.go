package zone

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
)

// ReshuffleDiscardIntoDraw moves every card from game's DiscardPile into its
// DrawPile via mover, optionally shuffling first. Shared by turn.Engine's
// Draw phase and judge.Service's reveal step so both honor the same
// "reshuffleOnEmptyDraw" policy (spec.md §8's boundary behavior for an empty
// DrawPile during a Judgement reveal).
func ReshuffleDiscardIntoDraw(mover *CardMoveService, game *model.Game, shuffle func([]model.Card)) {
	cards := append([]model.Card{}, game.DiscardPile.Cards...)
	if len(cards) == 0 {
		return
	}
	if shuffle != nil {
		shuffle(cards)
	}
	_ = mover.Move(Descriptor{
		SourceZone: game.DiscardPile.Id,
		TargetZone: game.DrawPile.Id,
		Cards:      cards,
		Reason:     event.ReasonDraw,
	})
}
