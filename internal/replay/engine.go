package replay

import (
	"legendcore/internal/choice"
	"legendcore/internal/corelog"
	"legendcore/internal/event"
	"legendcore/internal/initializer"
	"legendcore/internal/judge"
	"legendcore/internal/model"
	"legendcore/internal/ports"
	"legendcore/internal/resolution"
	"legendcore/internal/skill"
	"legendcore/internal/turn"
	"legendcore/internal/zone"

	"go.uber.org/zap"
)

// Engine wires every package into a single runnable simulation and drives
// it turn-by-turn to completion from a recorded choice sequence, per
// spec.md §6's "replay harness" requirement: same seed + same choice
// sequence reproduces an identical Game.Log.
//
// Grounded on the teacher's app.NewService constructor, which wires every
// collaborator (repo, rng, event publisher) into one struct before serving
// requests — here extended to wire the whole rules-engine dependency graph
// before running a game loop instead of a single request handler.
type Engine struct {
	Catalog ports.ContentCatalog
	Log     *zap.Logger
}

// Result is what a completed (or fatally halted) replay produced.
type Result struct {
	Game              *model.Game
	UnconsumedChoices int
	Fatal             error
}

// Run builds a Game from config, binds the replay's seeded RandomSource
// and QueuedOracle, and drives turns until the game ends or the choice
// sequence is exhausted.
func (e Engine) Run(config ports.GameConfig, choiceSequence []choice.ChoiceResult) Result {
	log := e.Log
	if log == nil {
		log = corelog.NewNop()
	}

	rng := NewRandomSource(config.Seed)
	var fatalErr error
	oracleQueue := NewQueuedOracle(choiceSequence, func(err error) { fatalErr = err })
	oracle := oracleQueue.Oracle()

	bus := event.NewBus()
	skillMgr := skill.NewManager(bus)
	skillProvider := skill.NewProvider(skillMgr)
	equipRegistry := skill.NewEquipmentSkillRegistry(skillMgr, bus)
	skill.RegisterBuiltinEquipment(equipRegistry)

	init := initializer.Initializer{
		Bus:     bus,
		Catalog: e.Catalog,
		Oracle:  oracle,
		Shuffle: rng.ShuffleCards,
	}
	builtGame, err := init.Initialize(config)
	if err != nil {
		return Result{Fatal: err}
	}

	reshuffle := true
	if v, ok := config.GameVariantOptions["reshuffleOnEmptyDraw"]; ok {
		if b, ok := v.(bool); ok {
			reshuffle = b
		}
	}

	mover := zone.New(builtGame, bus)
	judgeSvc := judge.New(builtGame, bus, mover, skillProvider, oracle)
	judgeSvc.ReshuffleOnEmptyDraw = reshuffle
	judgeSvc.Shuffle = rng.ShuffleCards
	corelog.NewLogCollector(bus, builtGame, log)

	ctx := resolution.NewContext(builtGame, bus, mover, log, skillMgr, skillProvider, equipRegistry, judgeSvc, oracle)
	turnEngine := turn.Engine{ReshuffleOnEmptyDraw: reshuffle, Shuffle: rng.ShuffleCards}

	seat := builtGame.CurrentPlayerSeat
	for !builtGame.IsFinished {
		if fatalErr != nil {
			break
		}
		actor := builtGame.PlayerAt(seat)
		if actor == nil {
			break
		}
		if actor.IsAlive {
			turnEngine.RunTurn(ctx, seat, defaultActionLoop)
		}
		if desc, over := evaluateWinCondition(builtGame); over {
			builtGame.IsFinished = true
			builtGame.WinnerDescription = desc
			event.Publish(bus, event.GameEndedEvent{WinnerDescription: desc})
			break
		}
		seat = nextAliveSeat(builtGame, seat)
		if seat < 0 {
			builtGame.IsFinished = true
			builtGame.WinnerDescription = "no players remain"
			event.Publish(bus, event.GameEndedEvent{WinnerDescription: builtGame.WinnerDescription})
			break
		}
	}

	return Result{Game: builtGame, UnconsumedChoices: oracleQueue.Remaining(), Fatal: fatalErr}
}

// defaultActionLoop offers the current player a single UseCard choice per
// call via the choice oracle, translating a "pass" answer (no selected
// card) into a false return that ends the Play phase. It is the reference
// ActionLoop a replay drives turns with; production hosts may supply their
// own richer loop to turn.Engine.RunTurn directly.
func defaultActionLoop(ctx *resolution.Context, actor *model.Player) bool {
	if actor.Hand.Len() == 0 {
		return false
	}
	allowed := make([]int, 0, actor.Hand.Len())
	for _, c := range actor.Hand.Cards {
		allowed = append(allowed, c.Id)
	}
	result := ctx.GetPlayerChoice(choice.ChoiceRequest{
		RequestId:    choice.NewRequestId(),
		PlayerSeat:   actor.Seat,
		ChoiceType:   choice.SelectCards,
		AllowedCards: allowed,
		CanPass:      true,
		DisplayKey:   "play.use_card",
	})
	if len(result.SelectedCardIds) == 0 {
		return false
	}
	idx := actor.Hand.IndexOf(result.SelectedCardIds[0])
	if idx < 0 {
		return false
	}
	card := actor.Hand.Cards[idx]
	ctx.Stack.Push(resolution.UseCardResolver{
		SourceSeat:  actor.Seat,
		Card:        card,
		TargetSeats: result.SelectedTargetSeats,
	})
	return true
}

func nextAliveSeat(game *model.Game, from int) int {
	n := len(game.Players)
	for i := 1; i <= n; i++ {
		p := game.PlayerAt(from + i)
		if p.IsAlive {
			return p.Seat
		}
	}
	return -1
}

// evaluateWinCondition implements the classical identity-mode victory
// rules spec.md leaves unspecified beyond "no alive players ⇒ game ends":
// the Lord's death ends the game for Loyalists, the Rebels win unless a
// lone surviving Renegade out-survives them, and the Lord/Loyalist camp
// wins once every Rebel and the Renegade are eliminated. Supplements
// spec.md §4's identity-mode role table with the win logic that table
// exists to serve.
func evaluateWinCondition(game *model.Game) (string, bool) {
	var lord *model.Player
	rebelsAlive, renegadeAlive, loyalistsAlive := 0, false, 0
	for _, p := range game.Players {
		if !p.IsAlive {
			continue
		}
		switch p.CampId {
		case model.Lord:
			lord = p
		case model.Rebel:
			rebelsAlive++
		case model.Renegade:
			renegadeAlive = true
		case model.Loyalist:
			loyalistsAlive++
		}
	}
	if lord == nil {
		if renegadeAlive && rebelsAlive == 0 && loyalistsAlive == 0 {
			return "Renegade wins: sole survivor after the Lord's death", true
		}
		return "Rebels win: the Lord has fallen", true
	}
	if rebelsAlive == 0 && !renegadeAlive {
		return "Lord and Loyalists win: all Rebels and the Renegade are eliminated", true
	}
	return "", false
}
