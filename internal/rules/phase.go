package rules

import "legendcore/internal/model"

// PhaseRuleService answers whether a player may currently use cards.
type PhaseRuleService struct{}

// IsCardUsagePhase reports true iff player is the current player and the
// game is in its Play phase (spec.md §4.2).
func (PhaseRuleService) IsCardUsagePhase(game *model.Game, player *model.Player) bool {
	cur := game.PlayerAt(game.CurrentPlayerSeat)
	return cur != nil && cur.Seat == player.Seat && game.CurrentPhase == model.PhasePlay
}
