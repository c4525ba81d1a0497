package judge

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/skill"
	"legendcore/internal/zone"
)

// maxModificationPasses bounds the modification window loop so a
// misbehaving skill cannot stall a judgement forever.
const maxModificationPasses = 16

// ModifierProvider is the narrow interface JudgementService queries for
// eligible modifiers, satisfied structurally by *skill.Provider.
type ModifierProvider interface {
	JudgementModifiersOf(seat int) []*skill.Skill
}

// JudgementRequest describes one judgement to run, per spec.md §4.5.
type JudgementRequest struct {
	Subject   *model.Player
	Predicate Predicate
}

// JudgementResult is the outcome of a completed judgement.
type JudgementResult struct {
	Card   model.Card
	Passed bool
}

// Service runs the two-phase reveal→calculate judgement pipeline with an
// interposed modification window, per spec.md §4.5.
//
// Grounded on the teacher's app/service.go multi-step resolution style
// (validate → mutate → emit) applied to reveal/modify/calculate.
type Service struct {
	Game     *model.Game
	Bus      *event.Bus
	Mover    *zone.CardMoveService
	Provider ModifierProvider
	Oracle   choice.Oracle

	// ReshuffleOnEmptyDraw and Shuffle mirror turn.Engine's reshuffle
	// policy (spec.md §8: "Empty DrawPile during Judgement reveal: if a
	// reshuffle policy exists, reshuffle Discard; otherwise fatal"), so a
	// delayed-trick judgement drawing a card behaves the same as a Draw
	// phase running out of cards.
	ReshuffleOnEmptyDraw bool
	Shuffle              func([]model.Card)
}

// New builds a judgement Service.
func New(game *model.Game, bus *event.Bus, mover *zone.CardMoveService, provider ModifierProvider, oracle choice.Oracle) *Service {
	return &Service{Game: game, Bus: bus, Mover: mover, Provider: provider, Oracle: oracle}
}

// Run draws the subject's judgement card, opens the modification window in
// seat order starting at the subject, then calculates and reports the
// final pass/fail verdict.
func (s *Service) Run(req JudgementRequest) JudgementResult {
	judgementId := choice.NewRequestId()
	event.Publish(s.Bus, event.JudgementStartedEvent{JudgementId: judgementId, OwnerSeat: req.Subject.Seat})

	card := s.reveal(req.Subject)
	event.Publish(s.Bus, event.JudgementCardRevealedEvent{JudgementId: judgementId, Card: card})

	card = s.runModificationWindow(req.Subject, card)

	passed := req.Predicate.Evaluate(card)
	event.Publish(s.Bus, event.JudgementCompletedEvent{JudgementId: judgementId, FinalCard: card, IsSuccess: passed})

	_ = s.Mover.Move(zone.Descriptor{
		SourceZone: req.Subject.Judgement.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{card},
		Reason:     event.ReasonJudgement,
	})

	return JudgementResult{Card: card, Passed: passed}
}

// reveal moves the top card of the draw pile into subject's judgement zone
// and returns it. If the draw pile is empty and ReshuffleOnEmptyDraw is set,
// the discard pile is reshuffled into it first; reveal only panics once that
// policy has been tried (or doesn't apply) and the draw pile is still empty.
func (s *Service) reveal(subject *model.Player) model.Card {
	if s.Game.DrawPile.Len() == 0 && s.ReshuffleOnEmptyDraw {
		zone.ReshuffleDiscardIntoDraw(s.Mover, s.Game, s.Shuffle)
	}
	top, ok := s.Game.DrawPile.Top()
	if !ok {
		panic("judge: draw pile empty during reveal")
	}
	_ = s.Mover.Move(zone.Descriptor{
		SourceZone: s.Game.DrawPile.Id,
		TargetZone: subject.Judgement.Id,
		Cards:      []model.Card{top},
		Reason:     event.ReasonReveal,
	})
	return top
}

// runModificationWindow lets every JudgementModifier-capable skill bound to
// players in seat order from subject offer a replacement for the current
// judgement card, re-scanning from subject after each successful swap so a
// later modifier always sees the current card (spec.md §4.5).
func (s *Service) runModificationWindow(subject *model.Player, card model.Card) model.Card {
	if s.Provider == nil {
		return card
	}
	current := card
	for pass := 0; pass < maxModificationPasses; pass++ {
		modified := false
		order := s.Game.ClockwiseFrom(subject.Seat, false)
		if subject.IsAlive {
			order = append([]*model.Player{subject}, order...)
		}
		for _, player := range order {
			for _, sk := range s.Provider.JudgementModifiersOf(player.Seat) {
				ctx := skill.EffectContext{Game: s.Game, SourceSeat: player.Seat, TargetSeat: subject.Seat, Card: current}
				if !sk.JudgementModifier.CanModify(ctx, player) {
					continue
				}
				replacement, ok := s.offerModification(player, sk)
				if !ok {
					continue
				}
				current = s.swapJudgementCard(subject, current, replacement)
				modified = true
				break
			}
			if modified {
				break
			}
		}
		if !modified {
			break
		}
	}
	return current
}

// offerModification asks player's oracle whether to exercise sk, then which
// hand card to use as the replacement.
func (s *Service) offerModification(player *model.Player, sk *skill.Skill) (model.Card, bool) {
	if s.Oracle == nil {
		return model.Card{}, false
	}
	confirm := s.Oracle(choice.ChoiceRequest{
		RequestId:  choice.NewRequestId(),
		PlayerSeat: player.Seat,
		ChoiceType: choice.Confirm,
		CanPass:    true,
		DisplayKey: "judgement.modify." + sk.Id,
	})
	if !confirm.Confirmed {
		return model.Card{}, false
	}
	allowed := make([]int, 0, player.Hand.Len())
	for _, c := range player.Hand.Cards {
		allowed = append(allowed, c.Id)
	}
	pick := s.Oracle(choice.ChoiceRequest{
		RequestId:    choice.NewRequestId(),
		PlayerSeat:   player.Seat,
		ChoiceType:   choice.SelectCards,
		AllowedCards: allowed,
		CanPass:      true,
		DisplayKey:   "judgement.modify.select_card",
	})
	if len(pick.SelectedCardIds) != 1 {
		return model.Card{}, false
	}
	for _, c := range player.Hand.Cards {
		if c.Id == pick.SelectedCardIds[0] {
			return c, true
		}
	}
	return model.Card{}, false
}

// swapJudgementCard discards the previous judgement card and moves
// replacement from its owner's hand into subject's judgement zone, returning
// the new current card.
func (s *Service) swapJudgementCard(subject *model.Player, previous, replacement model.Card) model.Card {
	ownerZone := s.locateHandOwner(replacement)
	if ownerZone == nil {
		return previous
	}
	_ = s.Mover.Move(zone.Descriptor{
		SourceZone: subject.Judgement.Id,
		TargetZone: model.DiscardPileZone,
		Cards:      []model.Card{previous},
		Reason:     event.ReasonDiscard,
	})
	_ = s.Mover.Move(zone.Descriptor{
		SourceZone: ownerZone.Id,
		TargetZone: subject.Judgement.Id,
		Cards:      []model.Card{replacement},
		Reason:     event.ReasonReveal,
	})
	return replacement
}

func (s *Service) locateHandOwner(card model.Card) *model.Zone {
	for _, p := range s.Game.Players {
		if p.Hand.Contains(card.Id) {
			return p.Hand
		}
	}
	return nil
}
