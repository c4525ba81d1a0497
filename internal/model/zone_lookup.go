package model

import "strings"

// ZoneByID resolves a ZoneId to the concrete *Zone it names. Returns false
// if the id is unknown (unknown seat, malformed id, etc).
func (g *Game) ZoneByID(id ZoneId) (*Zone, bool) {
	switch id {
	case DrawPileZone:
		return g.DrawPile, true
	case DiscardPileZone:
		return g.DiscardPile, true
	}

	s := string(id)
	for _, p := range g.Players {
		if z := matchSeatZone(s, "Hand", p.Seat, p.Hand); z != nil {
			return z, true
		}
		if z := matchSeatZone(s, "Equipment", p.Seat, p.Equipment); z != nil {
			return z, true
		}
		if z := matchSeatZone(s, "Judgement", p.Seat, p.Judgement); z != nil {
			return z, true
		}
	}
	return nil, false
}

func matchSeatZone(id, prefix string, seat int, z *Zone) *Zone {
	if id == prefix+"_"+itoa(seat) {
		return z
	}
	return nil
}

// ParseSeatFromZone extracts the seat number embedded in a per-seat zone id
// (e.g. "Hand_2" -> 2, true); returns false for shared piles.
func ParseSeatFromZone(id ZoneId) (int, bool) {
	s := string(id)
	i := strings.LastIndex(s, "_")
	if i < 0 {
		return 0, false
	}
	n := 0
	neg := false
	rest := s[i+1:]
	if rest == "" {
		return 0, false
	}
	for j, ch := range rest {
		if ch == '-' && j == 0 {
			neg = true
			continue
		}
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
