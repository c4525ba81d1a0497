package model

// Player is a single seat at the table. It owns its four zones directly;
// zones never reference their owner back (spec.md §9: no cyclic
// references — consumers needing owner info get it from the event payload).
type Player struct {
	Seat          int
	CampId        CampId
	FactionId     string
	HeroId        string
	MaxHealth     int
	CurrentHealth int
	IsAlive       bool
	RoleRevealed  bool

	Hand      *Zone
	Equipment *Zone
	Judgement *Zone

	// Flags is a small per-player string->value bag for ephemeral state
	// such as "SkipPlayPhase" -> true. Never read by rule queries directly;
	// only by the specific resolver/rule that owns the flag's meaning.
	Flags map[string]any

	// UsageCounts tracks per-turn CardSubType usage, reset at TurnStart.
	UsageCounts map[CardSubType]int
}

// NewPlayer constructs a Player with empty zones and a fresh flag/usage map.
func NewPlayer(seat int, maxHealth int) *Player {
	return &Player{
		Seat:          seat,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		IsAlive:       true,
		Hand:          NewZone(HandZone(seat)),
		Equipment:     NewZone(EquipmentZone(seat)),
		Judgement:     NewZone(JudgementZone(seat)),
		Flags:         map[string]any{},
		UsageCounts:   map[CardSubType]int{},
	}
}

// Flag reads a boolean flag, defaulting to false.
func (p *Player) Flag(name string) bool {
	v, ok := p.Flags[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// SetFlag sets a flag value.
func (p *Player) SetFlag(name string, v any) { p.Flags[name] = v }

// ClearFlag removes a flag entirely.
func (p *Player) ClearFlag(name string) { delete(p.Flags, name) }

// ResetUsageCounts clears per-turn usage counters, called at TurnStart.
func (p *Player) ResetUsageCounts() {
	p.UsageCounts = map[CardSubType]int{}
}

// EquippedSubType returns the card currently occupying the given equipment
// sub-slot (Weapon/Armor/OffensiveHorse/DefensiveHorse), if any.
func (p *Player) EquippedSubType(slot CardSubType) (Card, bool) {
	for _, c := range p.Equipment.Cards {
		if c.CardSubType == slot {
			return c, true
		}
	}
	return Card{}, false
}

// IsWounded reports whether the player has lost at least one health point.
func (p *Player) IsWounded() bool { return p.CurrentHealth < p.MaxHealth }
