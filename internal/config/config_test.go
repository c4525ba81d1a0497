package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogPopulatesAccessors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	raw := []byte(`{
		"cards": [{"DefinitionId": "slash", "Name": "Slash", "CardType": 0, "CardSubType": 1}],
		"heroes": [{"HeroId": "hero_a", "Name": "Hero A", "FactionId": "wei", "MaxHealth": 4, "SkillIds": ["skill.one"]}]
	}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture catalog: %v", err)
	}

	if err := LoadCatalog(path); err != nil {
		t.Fatalf("unexpected error loading catalog: %v", err)
	}

	cat := GetCatalog()
	if cat == nil {
		t.Fatal("expected a non-nil catalog after a successful load")
	}
	card, ok := cat.CardDefinition("slash")
	if !ok || card.Name != "Slash" {
		t.Errorf("expected to find the slash card definition, got %+v ok=%v", card, ok)
	}
	hero, ok := cat.HeroDefinition("hero_a")
	if !ok || hero.Name != "Hero A" || hero.MaxHealth != 4 {
		t.Errorf("expected to find hero_a, got %+v ok=%v", hero, ok)
	}
	ids := cat.AllHeroIds()
	if len(ids) != 1 || ids[0] != "hero_a" {
		t.Errorf("expected AllHeroIds to return [hero_a], got %v", ids)
	}

	if _, ok := cat.CardDefinition("does_not_exist"); ok {
		t.Error("expected an unknown card definition id to report ok=false")
	}
}

func TestLoadGameConfigRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")
	raw := []byte(`{
		"PlayerConfigs": [{"Seat": 0, "FactionId": "wei"}, {"Seat": 1, "FactionId": "shu"}],
		"DeckConfig": {"IncludedPacks": ["standard"]},
		"Seed": 12345,
		"GameModeId": "classic",
		"InitialHandCardCount": 4
	}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.PlayerConfigs) != 2 || cfg.Seed != 12345 || cfg.InitialHandCardCount != 4 {
		t.Errorf("unexpected decoded config: %+v", cfg)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadReplayRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "replay.json")
	raw := []byte(`{
		"Seed": 999,
		"InitialConfig": {"PlayerConfigs": [{"Seat": 0, "FactionId": "wei"}]},
		"ChoiceSequence": [{"RequestId": "r1", "PlayerSeat": 0, "SelectedCardIds": [1]}]
	}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture replay: %v", err)
	}
	record, err := LoadReplay(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Seed != 999 || len(record.ChoiceSequence) != 1 {
		t.Errorf("unexpected decoded replay: %+v", record)
	}
}
