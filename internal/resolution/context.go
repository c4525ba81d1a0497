package resolution

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/judge"
	"legendcore/internal/model"
	"legendcore/internal/rules"
	"legendcore/internal/skill"
	"legendcore/internal/zone"

	"go.uber.org/zap"
)

// Context is threaded through every Resolver.Resolve call: the game state,
// the acting player, the stack the resolver may push onto, and every
// service a resolver needs to do its work.
//
// Grounded on the teacher's Service struct (rng, repositories, bus) bundling
// every collaborator a use-case method needs into one receiver.
type Context struct {
	Game         *model.Game
	SourcePlayer *model.Player
	Stack        *Stack

	Mover *zone.CardMoveService
	Bus   *event.Bus
	Log   *zap.Logger

	Phase    rules.PhaseRuleService
	Range    rules.RangeRuleService
	Limit    rules.LimitRuleService
	Usage    rules.CardUsageRuleService
	Response rules.ResponseRuleService

	SkillManager  *skill.Manager
	SkillProvider *skill.Provider
	Equipment     *skill.EquipmentSkillRegistry
	Judge         *judge.Service

	GetPlayerChoice choice.Oracle

	// IntermediateResults is a free-form scratchpad a resolver may use to
	// pass data to a resolver it pushes, keyed by the pushing resolver's own
	// convention. None of the resolvers in this package currently reads or
	// writes it.
	IntermediateResults map[string]any
}

// NewContext wires a fresh resolution Context around game.
func NewContext(
	game *model.Game,
	bus *event.Bus,
	mover *zone.CardMoveService,
	log *zap.Logger,
	skillMgr *skill.Manager,
	skillProvider *skill.Provider,
	equipment *skill.EquipmentSkillRegistry,
	judgeSvc *judge.Service,
	oracle choice.Oracle,
) *Context {
	return &Context{
		Game:  game,
		Stack: &Stack{},
		Mover: mover,
		Bus:   bus,
		Log:   log,
		Range: rules.RangeRuleService{Provider: skillProvider},
		Limit: rules.LimitRuleService{Provider: skillProvider},
		Usage: rules.CardUsageRuleService{
			Phase: rules.PhaseRuleService{},
			Range: rules.RangeRuleService{Provider: skillProvider},
			Limit: rules.LimitRuleService{Provider: skillProvider},
		},
		SkillManager:        skillMgr,
		SkillProvider:       skillProvider,
		Equipment:           equipment,
		Judge:               judgeSvc,
		GetPlayerChoice:     oracle,
		IntermediateResults: map[string]any{},
	}
}
