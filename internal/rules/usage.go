package rules

import "legendcore/internal/model"

// targetRule describes how many targets a usable card subtype needs and how
// to filter legal targets for it, per spec.md §4.2/§4.6.
//
// Most cards apply one filter to every selected seat. A card whose targets
// play distinct roles (JieDaoShaRen: target 0 is the armed intermediary,
// target 1 is merely the final Slash's victim) sets filterAt instead, which
// is consulted per selected index rather than uniformly.
type targetRule struct {
	minTargets int
	maxTargets int
	filter     func(game *model.Game, actor *model.Player, candidate *model.Player) bool
	filterAt   func(game *model.Game, actor *model.Player, candidate *model.Player, index int) bool
	usable     bool // false for response-only subtypes (Dodge, Wuxiekeji)
}

// filterForIndex returns the predicate that governs the target at index,
// falling back to the uniform filter when the rule has no per-index one.
func (r targetRule) filterForIndex(index int) func(game *model.Game, actor *model.Player, candidate *model.Player) bool {
	if r.filterAt == nil {
		return r.filter
	}
	return func(g *model.Game, actor, cand *model.Player) bool {
		return r.filterAt(g, actor, cand, index)
	}
}

func otherAlive(actor, candidate *model.Player) bool {
	return candidate.Seat != actor.Seat && candidate.IsAlive
}

// CardUsageRuleService validates proactive card usage, per spec.md §4.2.
type CardUsageRuleService struct {
	Phase PhaseRuleService
	Range RangeRuleService
	Limit LimitRuleService
}

func (u CardUsageRuleService) targetRuleFor(card model.Card) targetRule {
	switch card.CardSubType {
	case model.Slash:
		return targetRule{minTargets: 1, maxTargets: 1, usable: true,
			filter: func(g *model.Game, actor, cand *model.Player) bool {
				return otherAlive(actor, cand) && u.Range.IsWithinAttackRange(g, actor.Seat, cand.Seat)
			}}
	case model.Peach:
		return targetRule{minTargets: 0, maxTargets: 0, usable: true}
	case model.GuoheChaiqiao:
		return targetRule{minTargets: 1, maxTargets: 1, usable: true,
			filter: func(g *model.Game, actor, cand *model.Player) bool {
				return otherAlive(actor, cand) &&
					(cand.Hand.Len() > 0 || cand.Equipment.Len() > 0 || cand.Judgement.Len() > 0)
			}}
	case model.ShunshouQianyang:
		return targetRule{minTargets: 1, maxTargets: 1, usable: true,
			filter: func(g *model.Game, actor, cand *model.Player) bool {
				return otherAlive(actor, cand) && cand.Hand.Len() > 0
			}}
	case model.Lebusishu, model.Shandian:
		return targetRule{minTargets: 1, maxTargets: 1, usable: true,
			filter: func(g *model.Game, actor, cand *model.Player) bool {
				return cand.IsAlive
			}}
	case model.JieDaoShaRen:
		return targetRule{minTargets: 2, maxTargets: 2, usable: true,
			filterAt: func(g *model.Game, actor, cand *model.Player, index int) bool {
				if !otherAlive(actor, cand) {
					return false
				}
				if index == 0 {
					_, armed := cand.EquippedSubType(model.Weapon)
					return armed
				}
				return true
			}}
	case model.WuzhongShengyou, model.NanmanRushin, model.WanjianQifa, model.Harvest, model.TaoyuanJieyi:
		return targetRule{minTargets: 0, maxTargets: 0, usable: true}
	case model.Weapon, model.Armor, model.OffensiveHorse, model.DefensiveHorse:
		return targetRule{minTargets: 0, maxTargets: 0, usable: true}
	default:
		return targetRule{usable: false}
	}
}

// GetLegalTargetsForUse returns the seats actor may currently select as the
// target at the given index, given the rest of game's state. index is
// relevant only for multi-role cards (JieDaoShaRen); single-role cards
// ignore it.
func (u CardUsageRuleService) GetLegalTargetsForUse(game *model.Game, actor *model.Player, card model.Card, index int) []int {
	rule := u.targetRuleFor(card)
	filter := rule.filterForIndex(index)
	if filter == nil {
		return nil
	}
	var seats []int
	for _, p := range game.AlivePlayers() {
		if filter(game, actor, p) {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// CanUseCard validates whether actor may use card against the chosen
// targets right now, per spec.md §4.2's ordered rejection checks.
func (u CardUsageRuleService) CanUseCard(game *model.Game, actor *model.Player, card model.Card, targets []int) RuleErrorCode {
	if !u.Phase.IsCardUsagePhase(game, actor) {
		return NotInCardUsagePhase
	}
	if !actor.Hand.Contains(card.Id) {
		return NotCardOwner
	}
	rule := u.targetRuleFor(card)
	if !rule.usable {
		return CardNotAllowed
	}
	if card.CardSubType == model.Slash && u.Limit.HasReachedLimit(actor) {
		return UsageLimitReached
	}
	switch card.CardSubType {
	case model.Peach:
		if !actor.IsWounded() {
			return NoLegalOptions
		}
	case model.NanmanRushin:
		if len(game.AlivePlayers()) < 2 {
			return NoLegalOptions
		}
	}
	if rule.minTargets > 0 {
		if len(targets) < rule.minTargets {
			return TargetRequired
		}
		if len(targets) > rule.maxTargets {
			return TooManyTargets
		}
		for i, t := range targets {
			legal := u.GetLegalTargetsForUse(game, actor, card, i)
			if len(legal) == 0 {
				return NoLegalOptions
			}
			legalSet := map[int]bool{}
			for _, s := range legal {
				legalSet[s] = true
			}
			if !legalSet[t] {
				return InvalidTarget
			}
		}
	}
	return RuleOK
}
