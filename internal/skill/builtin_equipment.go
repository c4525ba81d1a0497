package skill

import "legendcore/internal/model"

// This file implements the four named equipment behaviors of spec.md §4.7
// as Locked (passive) skills bound/unbound by EquipmentSkillRegistry.
// Each factory receives the physical card but closes over only the owning
// seat; no equipment skill reads its own card's Suit/Rank (Renwang Shield
// checks the suit of the incoming Slash), and no centralized rule reads
// equipment Suit/Rank generically — an Open Question spec.md §9 leaves
// unresolved and DESIGN.md's Open Question decisions resolve as "not centralized."

// qinggangSwordModifier implements RuleModifier for Qinggang Sword: +1
// attack distance, and armor-ignore for Slash effects sourced by its owner.
type qinggangSwordModifier struct{ ownerSeat int }

func (q *qinggangSwordModifier) ModifySlashLimit(_ *model.Player, base int) int { return base }
func (q *qinggangSwordModifier) ModifySeatDistance(attacker, defender *model.Player, base int) int {
	return base
}
func (q *qinggangSwordModifier) ModifyAttackDistance(attacker, defender *model.Player, base int) int {
	if attacker.Seat == q.ownerSeat {
		return base + 1
	}
	return base
}
func (q *qinggangSwordModifier) ShouldIgnoreArmor(ctx EffectContext) bool {
	return ctx.SourceSeat == q.ownerSeat && ctx.Card.CardSubType == model.Slash
}
func (q *qinggangSwordModifier) IsEffective(EffectContext) (bool, string) { return true, "" }

// NewQinggangSword builds the Qinggang Sword Locked weapon skill.
func NewQinggangSword(card model.Card, ownerSeat int) *Skill {
	return &Skill{
		Id:           "equip.qinggang_sword",
		Name:         "Qinggang Sword",
		Type:         Locked,
		Capabilities: CapRuleModifier,
		RuleModifier: &qinggangSwordModifier{ownerSeat: ownerSeat},
	}
}

// renwangShieldVeto implements EffectVeto for Renwang Shield: vetoes any
// Slash whose card is black (Spade or Club) targeting its owner.
type renwangShieldVeto struct{ ownerSeat int }

func (r *renwangShieldVeto) ShouldBeInvalidated(ctx EffectContext) bool {
	return ctx.TargetSeat == r.ownerSeat && ctx.Card.CardSubType == model.Slash && ctx.Card.IsBlack()
}

// NewRenwangShield builds the Renwang Shield Locked armor skill.
func NewRenwangShield(card model.Card, ownerSeat int) *Skill {
	return &Skill{
		Id:           "equip.renwang_shield",
		Name:         "Renwang Shield",
		Type:         Locked,
		Capabilities: CapEffectVeto,
		EffectVeto:   &renwangShieldVeto{ownerSeat: ownerSeat},
	}
}

// offensiveHorseModifier implements RuleModifier for an offensive horse:
// reduces the effective seat distance FROM its owner TO others by 1,
// floored at 1.
type offensiveHorseModifier struct{ ownerSeat int }

func (o *offensiveHorseModifier) ModifySlashLimit(_ *model.Player, base int) int { return base }
func (o *offensiveHorseModifier) ModifySeatDistance(attacker, defender *model.Player, base int) int {
	if attacker.Seat == o.ownerSeat {
		if base-1 < 1 {
			return 1
		}
		return base - 1
	}
	return base
}
func (o *offensiveHorseModifier) ModifyAttackDistance(attacker, defender *model.Player, base int) int {
	return base
}
func (o *offensiveHorseModifier) ShouldIgnoreArmor(EffectContext) bool     { return false }
func (o *offensiveHorseModifier) IsEffective(EffectContext) (bool, string) { return true, "" }

// NewOffensiveHorse builds the offensive-horse Locked skill.
func NewOffensiveHorse(card model.Card, ownerSeat int) *Skill {
	return &Skill{
		Id:           "equip.offensive_horse",
		Name:         "Offensive Horse",
		Type:         Locked,
		Capabilities: CapRuleModifier,
		RuleModifier: &offensiveHorseModifier{ownerSeat: ownerSeat},
	}
}

// defensiveHorseModifier implements RuleModifier for a defensive horse:
// increases the effective seat distance FROM others TO its owner by 1.
type defensiveHorseModifier struct{ ownerSeat int }

func (d *defensiveHorseModifier) ModifySlashLimit(_ *model.Player, base int) int { return base }
func (d *defensiveHorseModifier) ModifySeatDistance(attacker, defender *model.Player, base int) int {
	if defender.Seat == d.ownerSeat {
		return base + 1
	}
	return base
}
func (d *defensiveHorseModifier) ModifyAttackDistance(attacker, defender *model.Player, base int) int {
	return base
}
func (d *defensiveHorseModifier) ShouldIgnoreArmor(EffectContext) bool     { return false }
func (d *defensiveHorseModifier) IsEffective(EffectContext) (bool, string) { return true, "" }

// NewDefensiveHorse builds the defensive-horse Locked skill.
func NewDefensiveHorse(card model.Card, ownerSeat int) *Skill {
	return &Skill{
		Id:           "equip.defensive_horse",
		Name:         "Defensive Horse",
		Type:         Locked,
		Capabilities: CapRuleModifier,
		RuleModifier: &defensiveHorseModifier{ownerSeat: ownerSeat},
	}
}

// RegisterBuiltinEquipment wires the four named equipment behaviors into
// registry.
func RegisterBuiltinEquipment(registry *EquipmentSkillRegistry) {
	registry.Register(model.Weapon, func(c model.Card, seat int) *Skill {
		if c.DefinitionId == "qinggang_sword" {
			return NewQinggangSword(c, seat)
		}
		return &Skill{Id: "equip.weapon." + c.DefinitionId, Name: c.Name, Type: Locked}
	})
	registry.Register(model.Armor, func(c model.Card, seat int) *Skill {
		if c.DefinitionId == "renwang_shield" {
			return NewRenwangShield(c, seat)
		}
		return &Skill{Id: "equip.armor." + c.DefinitionId, Name: c.Name, Type: Locked}
	})
	registry.Register(model.OffensiveHorse, func(c model.Card, seat int) *Skill {
		return NewOffensiveHorse(c, seat)
	})
	registry.Register(model.DefensiveHorse, func(c model.Card, seat int) *Skill {
		return NewDefensiveHorse(c, seat)
	})
}
