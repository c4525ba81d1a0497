// Package skill implements the capability-set skill system of spec.md §4.9:
// a closed set of narrow capability interfaces instead of a deep class
// hierarchy (spec.md §9's re-architecture guidance), a SkillManager owning
// per-player instances, and the SkillRuleModifierProvider the rules package
// queries for effective answers.
//
// Grounded on the per-seat instance registry shape of the teacher's
// internal/bot/identities.go (one AI personality instance bound per seat,
// looked up by seat) — adapted here from AI decision-making (a Non-goal)
// to skill capability lookup.
package skill

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
)

// SkillType is the broad class of a skill.
type SkillType int

const (
	Active SkillType = iota
	Triggered
	Locked
	Awakening
	Limit
)

// Capability is a bitset of the narrow interfaces a Skill implements.
type Capability uint8

const (
	CapJudgementModifier Capability = 1 << iota
	CapRuleModifier
	CapEffectVeto
	CapArmorIgnore
	CapTriggerHandler
)

func (c Capability) Has(bit Capability) bool { return c&bit != 0 }

// EffectContext describes the in-flight effect a capability is being
// queried about (e.g. "is this Slash effective against its target",
// "should this armor veto this Slash").
type EffectContext struct {
	Game       *model.Game
	SourceSeat int
	TargetSeat int
	Card       model.Card
}

// RuleModifier is the capability the rules package queries (via Provider) for effective limits,
// distances, and armor-ignore/effectiveness answers (spec.md §4.9).
type RuleModifier interface {
	ModifySlashLimit(owner *model.Player, base int) int
	ModifySeatDistance(attacker, defender *model.Player, base int) int
	ModifyAttackDistance(attacker, defender *model.Player, base int) int
	ShouldIgnoreArmor(ctx EffectContext) bool
	IsEffective(ctx EffectContext) (ok bool, reason string)
}

// JudgementModifier is the capability JudgementService's modification
// window queries (spec.md §4.5).
type JudgementModifier interface {
	CanModify(ctx EffectContext, self *model.Player) bool
}

// EffectVeto is the capability armor skills implement to veto an incoming
// effect outright (e.g. Renwang Shield vetoing a black Slash).
type EffectVeto interface {
	ShouldBeInvalidated(ctx EffectContext) bool
}

// TriggerHandler lets a skill subscribe itself to the event bus.
type TriggerHandler interface {
	RegisterTriggers(bus *event.Bus, owner *model.Player)
}

// Skill is one bound skill instance. The capability tables are nil unless
// Capabilities has the matching bit set, per spec.md §9's "narrow
// capability, not deep hierarchy" guidance.
type Skill struct {
	Id           string
	Name         string
	Type         SkillType
	Capabilities Capability
	LordOnly     bool

	RuleModifier      RuleModifier
	JudgementModifier JudgementModifier
	EffectVeto        EffectVeto
	TriggerHandler    TriggerHandler
}
