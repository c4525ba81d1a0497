// Package response implements the response/nullification window protocol of
// spec.md §4.5: strict seat-order polling where the first candidate to
// accept wins, and the recursive Wuxiekeji nullification chain with its
// odd/even toggle.
//
// Grounded on the teacher's app/service.go sequential seat iteration
// (`for _, userID := range seats`, processing turns strictly in seat order)
// generalized into a candidate-polling loop that stops at the first
// acceptance instead of visiting every seat unconditionally.
package response

import (
	"legendcore/internal/choice"
	"legendcore/internal/event"
	"legendcore/internal/model"
	"legendcore/internal/rules"
)

// Window polls a set of candidate seats in order for a response card,
// stopping at the first seat that offers one.
type Window struct {
	Bus    *event.Bus
	Rule   rules.ResponseRuleService
	Oracle choice.Oracle
}

// Result describes the outcome of a polled window.
type Result struct {
	Responded     bool
	ResponderSeat int
	Card          model.Card
}

// Poll opens a response window of responseType over candidates in the
// given order, asking each in turn for a card satisfying ctx. The first
// candidate to offer a legal card wins; candidates who pass (or have no
// legal card) are skipped in seat order.
func (w Window) Poll(game *model.Game, responseType string, candidates []*model.Player, ctx rules.ResponseContext) Result {
	seats := make([]int, 0, len(candidates))
	for _, p := range candidates {
		seats = append(seats, p.Seat)
	}
	event.Publish(w.Bus, event.ResponseWindowOpenedEvent{ResponseType: responseType, Candidates: seats})

	for _, candidate := range candidates {
		askCtx := ctx
		askCtx.ResponderSeat = candidate.Seat
		legal := w.Rule.GetLegalResponseCards(game, candidate, askCtx)
		if len(legal) == 0 {
			continue
		}
		allowed := make([]int, 0, len(legal))
		for _, c := range legal {
			allowed = append(allowed, c.Id)
		}
		result := w.Oracle(choice.ChoiceRequest{
			RequestId:    choice.NewRequestId(),
			PlayerSeat:   candidate.Seat,
			ChoiceType:   choice.SelectCards,
			AllowedCards: allowed,
			CanPass:      true,
			DisplayKey:   "response." + responseType,
		})
		if len(result.SelectedCardIds) != 1 {
			continue
		}
		card, ok := findCard(legal, result.SelectedCardIds[0])
		if !ok {
			continue
		}
		if w.Rule.CanRespondWithCard(game, candidate, card, askCtx) != rules.RuleOK {
			continue
		}
		event.Publish(w.Bus, event.ResponseCardPlayedEvent{ResponseType: responseType, Seat: candidate.Seat, Card: card})
		event.Publish(w.Bus, event.ResponseWindowClosedEvent{ResponseType: responseType, Responded: true, ResponderSeat: candidate.Seat})
		return Result{Responded: true, ResponderSeat: candidate.Seat, Card: card}
	}

	event.Publish(w.Bus, event.ResponseWindowClosedEvent{ResponseType: responseType, Responded: false})
	return Result{Responded: false}
}

func findCard(cards []model.Card, id int) (model.Card, bool) {
	for _, c := range cards {
		if c.Id == id {
			return c, true
		}
	}
	return model.Card{}, false
}
