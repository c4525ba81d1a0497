package initializer

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/ports"
)

// defaultHeroPoolSize is how many candidate heroes each player is offered
// when GameVariantOptions["heroPoolSize"] is absent, per SPEC_FULL.md §6.
const defaultHeroPoolSize = 3

// DraftHeroes offers each player, in seat order, a candidate pool drawn
// from catalog.AllHeroIds() and lets their oracle pick one. The chosen
// hero's MaxHealth becomes the player's starting health.
func DraftHeroes(game *model.Game, catalog ports.ContentCatalog, oracle choice.Oracle, bus *event.Bus, poolSize int) InitializationErrorCode {
	if poolSize <= 0 {
		poolSize = defaultHeroPoolSize
	}
	available := append([]string{}, catalog.AllHeroIds()...)

	for _, player := range game.Players {
		if len(available) == 0 {
			return InvalidConfig
		}
		n := poolSize
		if n > len(available) {
			n = len(available)
		}
		pool := available[:n]
		event.Publish(bus, event.CharactersOfferedEvent{Seat: player.Seat, HeroIds: append([]string{}, pool...)})

		result := oracle(choice.ChoiceRequest{
			RequestId:  choice.NewRequestId(),
			PlayerSeat: player.Seat,
			ChoiceType: choice.SelectOption,
			DisplayKey: "hero_draft.select",
		})
		heroID := result.SelectedOptionId
		if heroID == "" {
			heroID = pool[0]
		}
		hero, ok := catalog.HeroDefinition(heroID)
		if !ok {
			return InvalidConfig
		}

		player.HeroId = hero.HeroId
		player.FactionId = hero.FactionId
		player.MaxHealth = hero.MaxHealth
		player.CurrentHealth = hero.MaxHealth
		event.Publish(bus, event.CharacterSelectedEvent{Seat: player.Seat, HeroId: hero.HeroId})
		if len(hero.SkillIds) > 0 {
			event.Publish(bus, event.SkillsRegisteredEvent{Seat: player.Seat, SkillIds: hero.SkillIds})
		}
		available = removeString(available, heroID)
	}
	return InitOK
}

func removeString(values []string, target string) []string {
	out := values[:0]
	for _, v := range values {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
