package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/zone"
)

// EquipResolver moves an equip card from the owner's hand into the matching
// equipment sub-slot. CardMoveService displaces any prior occupant of the
// same sub-slot to the discard pile as part of the move itself.
type EquipResolver struct {
	SourceSeat int
	Card       model.Card
}

func (EquipResolver) Name() string { return "Equip" }

func (r EquipResolver) Resolve(ctx *Context) ResolutionErrorCode {
	owner := ctx.Game.PlayerAt(r.SourceSeat)
	if owner == nil {
		return InvalidState
	}
	if err := ctx.Mover.Move(zone.Descriptor{
		SourceZone: owner.Hand.Id,
		TargetZone: owner.Equipment.Id,
		Cards:      []model.Card{r.Card},
		Reason:     event.ReasonEquip,
	}); err != nil {
		return InvalidState
	}
	return Success
}
