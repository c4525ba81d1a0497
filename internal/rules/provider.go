// Package rules implements the pure query services of spec.md §4.2: phase,
// range, usage-limit, card-usage and response legality. None of these ever
// mutate Game; each accepts an optional SkillRuleModifierProvider that may
// override the base answer (spec.md §4.2/§4.9).
//
// Grounded on the teacher's domain/rules.go (IsValidSet/CanBeat/
// IdentifyCombination: pure functions over []Card returning a typed
// result, no mutation, no exceptions for rejection) generalized from Tien
// Len combination legality to Slash/range/usage-limit legality.
package rules

import "legendcore/internal/model"

// SkillRuleModifierProvider is the narrow interface rule services query for
// effective answers (spec.md §4.9). skill.Provider implements this
// structurally.
type SkillRuleModifierProvider interface {
	ModifySlashLimit(owner *model.Player, base int) int
	ModifySeatDistance(attacker, defender *model.Player, base int) int
	ModifyAttackDistance(attacker, defender *model.Player, base int) int
}
