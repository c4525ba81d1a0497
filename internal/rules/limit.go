package rules

import "legendcore/internal/model"

// defaultSlashLimit is the base number of Slash a player may use per turn
// before any skill/equipment modifier, per spec.md §4.2.
const defaultSlashLimit = 1

// LimitRuleService tracks and checks per-turn usage limits for limited card
// subtypes. Only Slash carries a limit; other subtypes are unlimited, and
// the ModifySlashLimit hook adjusts the Slash limit only (SPEC_FULL.md keeps
// this narrow, matching spec.md's Non-goals).
type LimitRuleService struct {
	Provider SkillRuleModifierProvider
}

// EffectiveLimit returns owner's modified Slash usage limit for the current
// turn.
func (l LimitRuleService) EffectiveLimit(owner *model.Player) int {
	base := defaultSlashLimit
	if l.Provider != nil {
		base = l.Provider.ModifySlashLimit(owner, base)
	}
	return base
}

// HasReachedLimit reports whether owner has already used as many Slash this
// turn as its effective limit allows.
func (l LimitRuleService) HasReachedLimit(owner *model.Player) bool {
	return owner.UsageCounts[model.Slash] >= l.EffectiveLimit(owner)
}
