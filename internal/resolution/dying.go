package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// DyingResolver runs the rescue window for a player at zero or negative
// health: every alive player, polled in seat order starting from the dying
// player, may offer a Peach to restore one health point. The window repeats
// until the player is no longer at zero health or a full round passes with
// no Peach offered, at which point the player dies.
type DyingResolver struct {
	Seat int
}

func (DyingResolver) Name() string { return "Dying" }

func (r DyingResolver) Resolve(ctx *Context) ResolutionErrorCode {
	dying := ctx.Game.PlayerAt(r.Seat)
	if dying == nil {
		return InvalidState
	}
	window := response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice}

	for dying.CurrentHealth <= 0 {
		candidates := append([]*model.Player{dying}, ctx.Game.ClockwiseFrom(r.Seat, false)...)
		result := window.Poll(ctx.Game, "Peach", candidates, rules.ResponseContext{RequiredSubType: model.Peach})
		if !result.Responded {
			break
		}
		responder := ctx.Game.PlayerAt(result.ResponderSeat)
		_ = ctx.Mover.Move(zone.Descriptor{
			SourceZone: responder.Hand.Id,
			TargetZone: model.DiscardPileZone,
			Cards:      []model.Card{result.Card},
			Reason:     event.ReasonDiscard,
		})
		dying.CurrentHealth++
		if dying.CurrentHealth > dying.MaxHealth {
			dying.CurrentHealth = dying.MaxHealth
		}
	}

	if dying.CurrentHealth <= 0 {
		dying.IsAlive = false
		event.Publish(ctx.Bus, event.PlayerDiedEvent{Seat: r.Seat})
	}
	return Success
}
