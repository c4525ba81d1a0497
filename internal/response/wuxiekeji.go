package response

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// NullificationChain runs the recursive Wuxiekeji window of spec.md §4.5:
// any alive player may play Wuxiekeji to invalidate the pending effect;
// any alive player may then play a further Wuxiekeji to invalidate that
// invalidation, and so on, each successful play toggling the outcome.
//
// candidates is the full polling order for every round (seat order from the
// effect's origin); the same order is reused at every nesting level, per
// spec.md §4.5's silence on excluding prior responders.
type NullificationChain struct {
	Window Window
	Mover  *zone.CardMoveService
}

// Run polls rounds of Wuxiekeji until one passes with no response, and
// returns whether the original effect ends up nullified.
func (n NullificationChain) Run(game *model.Game, candidates []*model.Player) bool {
	nullified := false
	ctx := rules.ResponseContext{RequiredSubType: model.Wuxiekeji}
	for {
		result := n.Window.Poll(game, "Wuxiekeji", candidates, ctx)
		if !result.Responded {
			return nullified
		}
		nullified = !nullified
		responder := game.PlayerAt(result.ResponderSeat)
		_ = n.Mover.Move(zone.Descriptor{
			SourceZone: responder.Hand.Id,
			TargetZone: model.DiscardPileZone,
			Cards:      []model.Card{result.Card},
			Reason:     event.ReasonDiscard,
		})
	}
}
