package resolution

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// GuoheChaiqiaoResolver discards one card of source's choosing from any of
// target's three card-holding zones.
type GuoheChaiqiaoResolver struct {
	SourceSeat int
	TargetSeat int
}

func (GuoheChaiqiaoResolver) Name() string { return "GuoheChaiqiao" }

func (r GuoheChaiqiaoResolver) Resolve(ctx *Context) ResolutionErrorCode {
	actor := ctx.Game.PlayerAt(r.SourceSeat)
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if actor == nil || target == nil {
		return InvalidState
	}
	zones := []*model.Zone{target.Hand, target.Equipment, target.Judgement}
	card, owningZone, ok := pickCardFromZones(ctx, actor.Seat, zones)
	if !ok {
		return InvalidTarget
	}
	_ = ctx.Mover.Move(zone.Descriptor{
		SourceZone: owningZone.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{card},
		Reason:     event.ReasonDiscard,
	})
	return Success
}

// pickCardFromZones asks chooserSeat's oracle to pick one card id among
// every card currently in zones, and returns both the card and the zone it
// was found in.
func pickCardFromZones(ctx *Context, chooserSeat int, zones []*model.Zone) (model.Card, *model.Zone, bool) {
	allowed := make([]int, 0)
	for _, z := range zones {
		for _, c := range z.Cards {
			allowed = append(allowed, c.Id)
		}
	}
	if len(allowed) == 0 {
		return model.Card{}, nil, false
	}
	result := ctx.GetPlayerChoice(choice.ChoiceRequest{
		RequestId:    choice.NewRequestId(),
		PlayerSeat:   chooserSeat,
		ChoiceType:   choice.SelectCards,
		AllowedCards: allowed,
		DisplayKey:   "resolution.pick_card",
	})
	if len(result.SelectedCardIds) != 1 {
		return model.Card{}, nil, false
	}
	for _, z := range zones {
		if i := z.IndexOf(result.SelectedCardIds[0]); i >= 0 {
			return z.Cards[i], z, true
		}
	}
	return model.Card{}, nil, false
}
