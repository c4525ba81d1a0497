package initializer

import (
	"testing"

	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/ports"
)

func TestRoleTableForIdentityCounts(t *testing.T) {
	tests := []struct {
		n                           int
		rebels, loyalists, renegade int
	}{
		{4, 1, 1, 1},
		{5, 2, 1, 1},
		{6, 2, 2, 1},
		{7, 3, 2, 1},
		{8, 3, 3, 1},
		{9, 4, 3, 1},
		{10, 4, 4, 1},
	}
	for _, tt := range tests {
		roles := RoleTableFor(tt.n)
		if len(roles) != tt.n {
			t.Fatalf("n=%d: expected %d roles, got %d", tt.n, tt.n, len(roles))
		}
		counts := map[model.CampId]int{}
		for _, r := range roles {
			counts[r]++
		}
		if counts[model.Lord] != 1 {
			t.Errorf("n=%d: expected exactly 1 Lord, got %d", tt.n, counts[model.Lord])
		}
		if counts[model.Renegade] != tt.renegade {
			t.Errorf("n=%d: expected %d Renegade, got %d", tt.n, tt.renegade, counts[model.Renegade])
		}
		if counts[model.Rebel] != tt.rebels {
			t.Errorf("n=%d: expected %d Rebels, got %d", tt.n, tt.rebels, counts[model.Rebel])
		}
		if counts[model.Loyalist] != tt.loyalists {
			t.Errorf("n=%d: expected %d Loyalists, got %d", tt.n, tt.loyalists, counts[model.Loyalist])
		}
	}
}

func TestBuildStandardDeckHas108Cards(t *testing.T) {
	id := 0
	next := func() int { v := id; id++; return v }
	cards := BuildStandardDeck(next)
	if len(cards) != 108 {
		t.Fatalf("expected 108 cards, got %d", len(cards))
	}
	seen := map[int]bool{}
	for _, c := range cards {
		if seen[c.Id] {
			t.Fatalf("duplicate card id %d", c.Id)
		}
		seen[c.Id] = true
	}
}

func TestInitializeRejectsOutOfRangePlayerCount(t *testing.T) {
	init := Initializer{Bus: event.NewBus()}
	_, err := init.Initialize(ports.GameConfig{PlayerConfigs: []ports.PlayerConfig{{Seat: 0}}})
	if err == nil {
		t.Fatal("expected an error for a below-minimum player count")
	}
	initErr, ok := err.(*InitializationError)
	if !ok || initErr.Code != InvalidConfig {
		t.Fatalf("expected InvalidConfig, got %v", err)
	}
}

func TestInitializeAssignsLordAsCurrentPlayer(t *testing.T) {
	config := ports.GameConfig{
		PlayerConfigs: []ports.PlayerConfig{{Seat: 0}, {Seat: 1}, {Seat: 2}, {Seat: 3}},
	}
	init := Initializer{Bus: event.NewBus()}
	game, err := init.Initialize(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lord := game.PlayerAt(game.CurrentPlayerSeat)
	if lord.CampId != model.Lord {
		t.Errorf("expected the current player seat to be the Lord, got camp %v", lord.CampId)
	}
	if !lord.RoleRevealed {
		t.Error("expected the Lord's role to be revealed from the start")
	}
	for _, p := range game.Players {
		if p.CampId != model.Lord && p.RoleRevealed {
			t.Errorf("expected non-Lord seat %d to start with role hidden", p.Seat)
		}
	}
}

func TestInitializeDealsInitialHandsFromDrawPile(t *testing.T) {
	config := ports.GameConfig{
		PlayerConfigs:        []ports.PlayerConfig{{Seat: 0}, {Seat: 1}, {Seat: 2}, {Seat: 3}},
		InitialHandCardCount: 4,
	}
	init := Initializer{Bus: event.NewBus()}
	game, err := init.Initialize(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range game.Players {
		if p.Hand.Len() != 4 {
			t.Errorf("seat %d: expected 4 cards dealt, got %d", p.Seat, p.Hand.Len())
		}
	}
	if game.DrawPile.Len() != 108-4*4 {
		t.Errorf("expected draw pile to shrink by the dealt total, got %d remaining", game.DrawPile.Len())
	}
}

func TestApplyPermutationReordersRoles(t *testing.T) {
	roles := []model.CampId{model.Lord, model.Renegade, model.Rebel, model.Loyalist}
	order := []int{3, 2, 1, 0}
	applyPermutation(roles, order)
	want := []model.CampId{model.Loyalist, model.Rebel, model.Renegade, model.Lord}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, roles[i], want[i])
		}
	}
}

func TestPermutationFromProducesAPermutation(t *testing.T) {
	reverse := func(cards []model.Card) {
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
	}
	order := permutationFrom(reverse, 5)
	seen := map[int]bool{}
	for _, idx := range order {
		if idx < 0 || idx >= 5 || seen[idx] {
			t.Fatalf("not a permutation of [0,5): %v", order)
		}
		seen[idx] = true
	}
	want := []int{4, 3, 2, 1, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, order[i], want[i])
		}
	}
}
