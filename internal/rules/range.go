package rules

import "legendcore/internal/model"

// RangeRuleService computes effective seat distance and attack range,
// per spec.md §4.2. Equipment modifiers (OffensiveHorse/DefensiveHorse)
// apply through GetSeatDistance only; Qinggang Sword's +1 applies through
// GetAttackDistance only — each equipment modifies exactly one hook, the
// decision recorded in DESIGN.md to resolve spec.md §4.2/§4.7's overlapping
// description of defensive-horse's effect without double-counting it.
type RangeRuleService struct {
	Provider SkillRuleModifierProvider
}

// GetSeatDistance is the minimum clockwise/counter-clockwise step count
// between alive players a and b, then adjusted by every active modifier in
// seat order starting from a, clamped to a minimum of 1.
func (r RangeRuleService) GetSeatDistance(game *model.Game, a, b int) int {
	base := game.SeatDistance(a, b)
	attacker := game.PlayerAt(a)
	defender := game.PlayerAt(b)
	if r.Provider != nil && attacker != nil && defender != nil {
		base = r.Provider.ModifySeatDistance(attacker, defender, base)
	}
	if base < 1 {
		base = 1
	}
	return base
}

// GetAttackDistance is the threshold seat-distance within which attacker
// may target defender with Slash: base 1 plus every additive weapon
// modifier from skills owned by attacker (e.g. Qinggang Sword).
func (r RangeRuleService) GetAttackDistance(game *model.Game, attackerSeat, defenderSeat int) int {
	base := 1
	attacker := game.PlayerAt(attackerSeat)
	defender := game.PlayerAt(defenderSeat)
	if r.Provider != nil && attacker != nil && defender != nil {
		base = r.Provider.ModifyAttackDistance(attacker, defender, base)
	}
	return base
}

// IsWithinAttackRange reports whether attacker may legally target defender
// with Slash given the current modified distances.
func (r RangeRuleService) IsWithinAttackRange(game *model.Game, attackerSeat, defenderSeat int) bool {
	return r.GetSeatDistance(game, attackerSeat, defenderSeat) <= r.GetAttackDistance(game, attackerSeat, defenderSeat)
}
