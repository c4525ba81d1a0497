package resolution

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/zone"
)

// HarvestResolver reveals as many cards as there are alive players from the
// top of the draw pile, then lets every alive player, in seat order
// starting from source, pick one of the remaining revealed cards. Each
// individual gain opens its own Wuxiekeji window (DESIGN.md's Open Question decisions, resolving
// spec.md §9's open question of per-use vs per-gain nullification timing in
// favor of per-gain) rather than one window covering the whole card.
type HarvestResolver struct {
	SourceSeat int
}

func (HarvestResolver) Name() string { return "Harvest" }

func (r HarvestResolver) Resolve(ctx *Context) ResolutionErrorCode {
	alive := ctx.Game.AlivePlayers()
	revealed := make([]int, 0, len(alive))
	for i := 0; i < len(alive) && i < ctx.Game.DrawPile.Len(); i++ {
		revealed = append(revealed, ctx.Game.DrawPile.Cards[i].Id)
	}

	recipients := append([]*model.Player{}, ctx.Game.PlayerAt(r.SourceSeat))
	recipients = append(recipients, ctx.Game.ClockwiseFrom(r.SourceSeat, false)...)

	for _, recipient := range recipients {
		if len(revealed) == 0 {
			break
		}
		result := ctx.GetPlayerChoice(choice.ChoiceRequest{
			RequestId:    choice.NewRequestId(),
			PlayerSeat:   recipient.Seat,
			ChoiceType:   choice.SelectCards,
			AllowedCards: revealed,
			DisplayKey:   "harvest.select_card",
		})
		if len(result.SelectedCardIds) != 1 {
			continue
		}
		pickedId := result.SelectedCardIds[0]
		revealed = removeId(revealed, pickedId)
		card, ok := findZoneCard(ctx.Game.DrawPile, pickedId)
		if !ok {
			continue
		}

		chain := response.NullificationChain{
			Window: response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice},
			Mover:  ctx.Mover,
		}
		if chain.Run(ctx.Game, ctx.Game.ClockwiseFrom(r.SourceSeat, true)) {
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: ctx.Game.DrawPile.Id,
				TargetZone: model.DiscardPileZone,
				Cards:      []model.Card{card},
				Reason:     event.ReasonDiscard,
			})
			continue
		}
		_ = ctx.Mover.Move(zone.Descriptor{
			SourceZone: ctx.Game.DrawPile.Id,
			TargetZone: recipient.Hand.Id,
			Cards:      []model.Card{card},
			Reason:     event.ReasonGain,
		})
	}

	// Any revealed card left unclaimed once every recipient has had their
	// turn (a recipient who doesn't select exactly one card forfeits theirs)
	// is discarded rather than left sitting in the draw pile.
	if len(revealed) > 0 {
		leftover := make([]model.Card, 0, len(revealed))
		for _, id := range revealed {
			if card, ok := findZoneCard(ctx.Game.DrawPile, id); ok {
				leftover = append(leftover, card)
			}
		}
		if len(leftover) > 0 {
			_ = ctx.Mover.Move(zone.Descriptor{
				SourceZone: ctx.Game.DrawPile.Id,
				TargetZone: model.DiscardPileZone,
				Cards:      leftover,
				Reason:     event.ReasonDiscard,
			})
		}
	}
	return Success
}

func removeId(ids []int, target int) []int {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func findZoneCard(z *model.Zone, id int) (model.Card, bool) {
	if i := z.IndexOf(id); i >= 0 {
		return z.Cards[i], true
	}
	return model.Card{}, false
}
