package choice

import "legendcore/internal/model"

// ValidationErrorCode is the stable enum of ways a ChoiceResult can fail to
// satisfy the ChoiceRequest it answers.
type ValidationErrorCode int

const (
	ValidationOK ValidationErrorCode = iota
	RequestIdMismatch
	PlayerSeatMismatch
	TargetRequired
	TooManyTargets
	InvalidTarget
	CardNotAllowed
)

func (c ValidationErrorCode) String() string {
	switch c {
	case ValidationOK:
		return "OK"
	case RequestIdMismatch:
		return "RequestIdMismatch"
	case PlayerSeatMismatch:
		return "PlayerSeatMismatch"
	case TargetRequired:
		return "TargetRequired"
	case TooManyTargets:
		return "TooManyTargets"
	case InvalidTarget:
		return "InvalidTarget"
	case CardNotAllowed:
		return "CardNotAllowed"
	default:
		return "Unknown"
	}
}

// Validator is ActionExecutionValidator: it verifies a ChoiceResult
// actually satisfies the ChoiceRequest it was issued for.
type Validator struct {
	game *model.Game
}

// NewValidator binds a Validator to the game whose alive-player set targets
// are checked against.
func NewValidator(game *model.Game) *Validator {
	return &Validator{game: game}
}

// Validate checks result against request, returning the first violation
// found, or ValidationOK.
func (v *Validator) Validate(request ChoiceRequest, result ChoiceResult) ValidationErrorCode {
	if result.RequestId != request.RequestId {
		return RequestIdMismatch
	}
	if result.PlayerSeat != request.PlayerSeat {
		return PlayerSeatMismatch
	}

	if request.ChoiceType == SelectTargets && request.TargetConstraints != nil {
		tc := request.TargetConstraints
		n := len(result.SelectedTargetSeats)
		if n < tc.MinTargets {
			return TargetRequired
		}
		if tc.MaxTargets > 0 && n > tc.MaxTargets {
			return TooManyTargets
		}
		for _, seat := range result.SelectedTargetSeats {
			if !v.seatPassesFilter(request.PlayerSeat, seat, tc.FilterType) {
				return InvalidTarget
			}
		}
	}

	if request.ChoiceType == SelectCards && len(result.SelectedCardIds) > 0 {
		allowed := make(map[int]bool, len(request.AllowedCards))
		for _, id := range request.AllowedCards {
			allowed[id] = true
		}
		for _, id := range result.SelectedCardIds {
			if !allowed[id] {
				return CardNotAllowed
			}
		}
	}

	return ValidationOK
}

func (v *Validator) seatPassesFilter(actor, target int, ft FilterType) bool {
	p := v.game.PlayerAt(target)
	if p == nil || !p.IsAlive {
		return false
	}
	switch ft {
	case Any:
		return true
	case Self:
		return target == actor
	case SelfOrFriends:
		if target == actor {
			return true
		}
		actorP := v.game.PlayerAt(actor)
		return actorP != nil && actorP.CampId != model.CampNone && actorP.CampId == p.CampId
	case Enemies:
		if target == actor {
			return false
		}
		actorP := v.game.PlayerAt(actor)
		if actorP == nil {
			return true
		}
		return actorP.CampId == model.CampNone || actorP.CampId != p.CampId
	default:
		return true
	}
}
