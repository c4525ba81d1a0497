package resolution

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
)

// DamageResolver applies one instance of damage to TargetSeat and, if the
// target's health drops to zero or below, pushes DyingResolver. Damage is
// never applied inline by another resolver; every effect that deals damage
// pushes a DamageResolver instead.
type DamageResolver struct {
	SourceSeat int
	TargetSeat int
	Amount     int
	Type       model.DamageType
	Cause      string
}

func (DamageResolver) Name() string { return "Damage" }

func (r DamageResolver) Resolve(ctx *Context) ResolutionErrorCode {
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if target == nil || !target.IsAlive {
		return TargetNotAlive
	}
	target.CurrentHealth -= r.Amount
	event.Publish(ctx.Bus, event.DamageAppliedEvent{
		SourceSeat: r.SourceSeat,
		TargetSeat: r.TargetSeat,
		Amount:     r.Amount,
		Type:       r.Type,
		Cause:      r.Cause,
	})
	if target.CurrentHealth <= 0 {
		ctx.Stack.Push(DyingResolver{Seat: r.TargetSeat})
	}
	return Success
}
