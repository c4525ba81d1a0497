package resolution

// TaoyuanJieyiResolver heals every alive player by one health point, capped
// at their own maximum.
type TaoyuanJieyiResolver struct {
	SourceSeat int
}

func (TaoyuanJieyiResolver) Name() string { return "TaoyuanJieyi" }

func (r TaoyuanJieyiResolver) Resolve(ctx *Context) ResolutionErrorCode {
	for _, p := range ctx.Game.AlivePlayers() {
		if p.CurrentHealth < p.MaxHealth {
			p.CurrentHealth++
		}
	}
	return Success
}
