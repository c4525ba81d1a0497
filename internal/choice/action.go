package choice

// ActionDescriptor describes the shape of targets/cards a particular action
// (e.g. "use Slash", "respond with Dodge") needs from the player.
type ActionDescriptor struct {
	ActionId          string
	DisplayKey        string
	RequiresTargets   bool
	TargetConstraints TargetConstraints
	CardCandidates    []int
}

// Factory builds ChoiceRequests from ActionDescriptors.
type Factory struct{}

// NewFactory constructs a ChoiceRequestFactory.
func NewFactory() *Factory { return &Factory{} }

// BuildTargetRequest builds a SelectTargets request for action.
func (f *Factory) BuildTargetRequest(seat int, action ActionDescriptor) ChoiceRequest {
	tc := action.TargetConstraints
	return ChoiceRequest{
		RequestId:         NewRequestId(),
		PlayerSeat:        seat,
		ChoiceType:        SelectTargets,
		TargetConstraints: &tc,
		DisplayKey:        action.DisplayKey,
		CanPass:           tc.MinTargets == 0,
	}
}

// BuildCardRequest builds a SelectCards request offering allowedCards.
func (f *Factory) BuildCardRequest(seat int, displayKey string, allowedCards []int, canPass bool) ChoiceRequest {
	return ChoiceRequest{
		RequestId:    NewRequestId(),
		PlayerSeat:   seat,
		ChoiceType:   SelectCards,
		AllowedCards: allowedCards,
		DisplayKey:   displayKey,
		CanPass:      canPass,
	}
}

// BuildOptionRequest builds a SelectOption request.
func (f *Factory) BuildOptionRequest(seat int, displayKey string, canPass bool) ChoiceRequest {
	return ChoiceRequest{
		RequestId:  NewRequestId(),
		PlayerSeat: seat,
		ChoiceType: SelectOption,
		DisplayKey: displayKey,
		CanPass:    canPass,
	}
}

// BuildConfirmRequest builds a Confirm request.
func (f *Factory) BuildConfirmRequest(seat int, displayKey string) ChoiceRequest {
	return ChoiceRequest{
		RequestId:  NewRequestId(),
		PlayerSeat: seat,
		ChoiceType: Confirm,
		DisplayKey: displayKey,
		CanPass:    true,
	}
}
