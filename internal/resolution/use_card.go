package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/response"
	"legendcore/internal/rules"
	"legendcore/internal/zone"
)

// UseCardResolver is the single entry point every proactive card use goes
// through: validate, then either hand an equip or delayed-trick card
// straight to its specialized resolver (which controls its destination; no
// Wuxiekeji window is opened for these here), or move the card out of hand,
// run the generic Trick-level Wuxiekeji window, and push the subtype's
// effect resolver.
//
// Harvest is the one immediate Trick excluded from this generic nullification pass:
// DESIGN.md's Open Question decisions resolve its nullification window to open per individual
// gain rather than once at point of use, so HarvestResolver runs its own
// windows instead.
type UseCardResolver struct {
	SourceSeat  int
	Card        model.Card
	TargetSeats []int
}

func (UseCardResolver) Name() string { return "UseCard" }

func (r UseCardResolver) Resolve(ctx *Context) ResolutionErrorCode {
	actor := ctx.Game.PlayerAt(r.SourceSeat)
	if actor == nil {
		return InvalidState
	}
	if code := ctx.Usage.CanUseCard(ctx.Game, actor, r.Card, r.TargetSeats); code != rules.RuleOK {
		return InvalidState
	}
	actor.UsageCounts[r.Card.CardSubType]++
	event.Publish(ctx.Bus, event.CardUsedEvent{Seat: r.SourceSeat, Card: r.Card, TargetSeats: r.TargetSeats})

	switch r.Card.CardSubType {
	case model.Weapon, model.Armor, model.OffensiveHorse, model.DefensiveHorse:
		ctx.Stack.Push(EquipResolver{SourceSeat: r.SourceSeat, Card: r.Card})
		return Success
	case model.Lebusishu, model.Shandian:
		ctx.Stack.Push(DelayedTrickResolver{SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeats[0], Card: r.Card})
		return Success
	}

	if err := ctx.Mover.Move(zone.Descriptor{
		SourceZone: actor.Hand.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{r.Card},
		Reason:     event.ReasonPlay,
	}); err != nil {
		return InvalidState
	}

	if r.Card.CardType == model.Trick && r.Card.CardSubType != model.Harvest {
		chain := response.NullificationChain{
			Window: response.Window{Bus: ctx.Bus, Rule: ctx.Response, Oracle: ctx.GetPlayerChoice},
			Mover:  ctx.Mover,
		}
		if chain.Run(ctx.Game, ctx.Game.ClockwiseFrom(r.SourceSeat, true)) {
			return Success
		}
	}

	ctx.Stack.Push(r.effectResolver())
	return Success
}

func (r UseCardResolver) effectResolver() Resolver {
	switch r.Card.CardSubType {
	case model.Slash:
		return SlashResolver{SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeats[0], Card: r.Card}
	case model.Peach:
		return PeachResolver{TargetSeat: r.SourceSeat}
	case model.WuzhongShengyou:
		return WuzhongShengyouResolver{SourceSeat: r.SourceSeat}
	case model.GuoheChaiqiao:
		return GuoheChaiqiaoResolver{SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeats[0]}
	case model.ShunshouQianyang:
		return ShunshouQianyangResolver{SourceSeat: r.SourceSeat, TargetSeat: r.TargetSeats[0]}
	case model.NanmanRushin:
		return NanmanRushinResolver{SourceSeat: r.SourceSeat}
	case model.WanjianQifa:
		return WanjianqifaResolver{SourceSeat: r.SourceSeat}
	case model.Harvest:
		return HarvestResolver{SourceSeat: r.SourceSeat}
	case model.JieDaoShaRen:
		return JieDaoShaRenResolver{SourceSeat: r.SourceSeat, WeaponOwnerSeat: r.TargetSeats[0], VictimSeat: r.TargetSeats[1]}
	case model.TaoyuanJieyi:
		return TaoyuanJieyiResolver{SourceSeat: r.SourceSeat}
	default:
		return noopResolver{}
	}
}

type noopResolver struct{}

func (noopResolver) Name() string                             { return "Noop" }
func (noopResolver) Resolve(ctx *Context) ResolutionErrorCode { return Success }
