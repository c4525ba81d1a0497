package resolution

// PeachResolver applies a proactively-used Peach (legal only when the
// caster is wounded, enforced by rules.CardUsageRuleService before this
// resolver is ever pushed).
type PeachResolver struct {
	TargetSeat int
}

func (PeachResolver) Name() string { return "Peach" }

func (r PeachResolver) Resolve(ctx *Context) ResolutionErrorCode {
	target := ctx.Game.PlayerAt(r.TargetSeat)
	if target == nil {
		return InvalidState
	}
	target.CurrentHealth++
	if target.CurrentHealth > target.MaxHealth {
		target.CurrentHealth = target.MaxHealth
	}
	return Success
}
