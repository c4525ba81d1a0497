package skill

import "legendcore/internal/model"

// Provider implements rules.SkillRuleModifierProvider by aggregating across
// every skill bound to the relevant player(s), per spec.md §4.9: "the
// provider aggregates across all skills of both attacker and defender as
// appropriate."
type Provider struct {
	mgr *Manager
}

// NewProvider wraps mgr as a rules.SkillRuleModifierProvider.
func NewProvider(mgr *Manager) *Provider {
	return &Provider{mgr: mgr}
}

// ModifySlashLimit folds every RuleModifier skill owned by player over base,
// each seeing the previous modifier's result.
func (p *Provider) ModifySlashLimit(player *model.Player, base int) int {
	v := base
	for _, s := range p.mgr.WithCapability(player.Seat, CapRuleModifier) {
		v = s.RuleModifier.ModifySlashLimit(player, v)
	}
	return v
}

// ModifySeatDistance folds modifiers from both attacker's and defender's
// bound skills over base.
func (p *Provider) ModifySeatDistance(attacker, defender *model.Player, base int) int {
	v := base
	for _, s := range p.mgr.WithCapability(attacker.Seat, CapRuleModifier) {
		v = s.RuleModifier.ModifySeatDistance(attacker, defender, v)
	}
	for _, s := range p.mgr.WithCapability(defender.Seat, CapRuleModifier) {
		v = s.RuleModifier.ModifySeatDistance(attacker, defender, v)
	}
	return v
}

// ModifyAttackDistance folds additive weapon/skill modifiers from
// attacker's and then defender's bound skills over base.
func (p *Provider) ModifyAttackDistance(attacker, defender *model.Player, base int) int {
	v := base
	for _, s := range p.mgr.WithCapability(attacker.Seat, CapRuleModifier) {
		v = s.RuleModifier.ModifyAttackDistance(attacker, defender, v)
	}
	for _, s := range p.mgr.WithCapability(defender.Seat, CapRuleModifier) {
		v = s.RuleModifier.ModifyAttackDistance(attacker, defender, v)
	}
	return v
}

// ShouldIgnoreArmor reports whether any RuleModifier skill bound to the
// effect's source asserts armor-ignore (e.g. Qinggang Sword).
func (p *Provider) ShouldIgnoreArmor(ctx EffectContext) bool {
	for _, s := range p.mgr.WithCapability(ctx.SourceSeat, CapRuleModifier) {
		if s.RuleModifier.ShouldIgnoreArmor(ctx) {
			return true
		}
	}
	return false
}

// IsEffective reports whether any RuleModifier skill bound to either side
// vetoes the effect's general effectiveness (distinct from armor veto).
func (p *Provider) IsEffective(ctx EffectContext) (bool, string) {
	for _, seat := range []int{ctx.SourceSeat, ctx.TargetSeat} {
		for _, s := range p.mgr.WithCapability(seat, CapRuleModifier) {
			if ok, reason := s.RuleModifier.IsEffective(ctx); !ok {
				return false, reason
			}
		}
	}
	return true, ""
}

// ShouldVetoEffect reports whether any EffectVeto skill bound to seat (e.g.
// an armor skill) invalidates the in-flight effect.
func (p *Provider) ShouldVetoEffect(seat int, ctx EffectContext) bool {
	for _, s := range p.mgr.WithCapability(seat, CapEffectVeto) {
		if s.EffectVeto.ShouldBeInvalidated(ctx) {
			return true
		}
	}
	return false
}

// JudgementModifiersOf returns every JudgementModifier-capable skill bound
// to seat.
func (p *Provider) JudgementModifiersOf(seat int) []*Skill {
	return p.mgr.WithCapability(seat, CapJudgementModifier)
}

// Manager exposes the underlying Manager for callers that need to
// Bind/Unbind directly.
func (p *Provider) Manager() *Manager { return p.mgr }
