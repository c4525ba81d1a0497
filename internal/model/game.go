package model

// Game is the root aggregate: the ordered players, the two shared piles,
// and the current turn/phase pointer. Game is mutated only by
// zone.CardMoveService (for zone contents) and by a small set of dedicated
// field writes (health, flags, phase, turn number) as described in
// spec.md §4.4.
type Game struct {
	Players           []*Player
	DrawPile          *Zone
	DiscardPile       *Zone
	CurrentPlayerSeat int
	CurrentPhase      Phase
	TurnNumber        int
	IsFinished        bool
	WinnerDescription string

	// Log is the replay/audit trail assembled by the LogCollector. Present
	// on Game so a completed simulation can be inspected without threading
	// a separate return value through every call site.
	Log []LoggedEvent

	nextCardId int
}

// LoggedEvent is one entry in the audit trail, keyed by an ever-increasing
// sequence number as required by spec.md §6 ("Log events").
type LoggedEvent struct {
	Sequence  int
	EventType string
	Payload   any
}

// NewGame constructs a Game with N seats, each holding a fresh player
// (NewPlayer with max health 4) and empty zones; roles, heroes and cards
// are filled in by the caller (see initializer.Initializer).
func NewGame(numPlayers int) *Game {
	g := &Game{
		DrawPile:    NewZone(DrawPileZone),
		DiscardPile: NewZone(DiscardPileZone),
	}
	for i := 0; i < numPlayers; i++ {
		g.Players = append(g.Players, NewPlayer(i, 4))
	}
	return g
}

// NextCardId hands out the next unique Card.Id for this game.
func (g *Game) NextCardId() int {
	id := g.nextCardId
	g.nextCardId++
	return id
}

// PlayerAt returns the player at the given seat, wrapping seat modulo the
// player count (so -1 is the last seat); nil only when there are no players.
func (g *Game) PlayerAt(seat int) *Player {
	n := len(g.Players)
	if n == 0 {
		return nil
	}
	seat = ((seat % n) + n) % n
	return g.Players[seat]
}

// AlivePlayers returns players with IsAlive true, in seat order.
func (g *Game) AlivePlayers() []*Player {
	out := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.IsAlive {
			out = append(out, p)
		}
	}
	return out
}

// ClockwiseFrom iterates seats s+1, s+2, ... mod N, skipping dead players,
// until every alive player (other than possibly the start seat itself) has
// been visited once. The start seat is never included unless includeSelf.
func (g *Game) ClockwiseFrom(seat int, includeSelf bool) []*Player {
	n := len(g.Players)
	if n == 0 {
		return nil
	}
	out := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		p := g.PlayerAt(seat + i)
		if p.Seat == seat && !includeSelf {
			continue
		}
		if p.IsAlive {
			out = append(out, p)
		}
	}
	return out
}

// SeatDistance returns the minimum of clockwise and counter-clockwise step
// counts between two alive players, ignoring dead seats entirely.
func (g *Game) SeatDistance(a, b int) int {
	alive := g.AlivePlayers()
	n := len(alive)
	if n == 0 {
		return 0
	}
	ia, ib := -1, -1
	for i, p := range alive {
		if p.Seat == a {
			ia = i
		}
		if p.Seat == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return n
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	rev := n - d
	if rev < d {
		d = rev
	}
	return d
}

// AppendLog records one event into the game's audit trail and returns its
// assigned sequence number.
func (g *Game) AppendLog(eventType string, payload any) int {
	seq := len(g.Log)
	g.Log = append(g.Log, LoggedEvent{Sequence: seq, EventType: eventType, Payload: payload})
	return seq
}
