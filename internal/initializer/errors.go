package initializer

// InitializationErrorCode enumerates why GameInitializer.Initialize could
// not produce a playable Game.
type InitializationErrorCode int

const (
	InitOK InitializationErrorCode = iota
	NotEnoughCardsForInitialHands
	InvalidConfig
	InvalidChoiceSequence
)

func (c InitializationErrorCode) String() string {
	switch c {
	case InitOK:
		return "OK"
	case NotEnoughCardsForInitialHands:
		return "NotEnoughCardsForInitialHands"
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidChoiceSequence:
		return "InvalidChoiceSequence"
	default:
		return "Unknown"
	}
}

// InitializationError pairs a code with the detail that produced it.
type InitializationError struct {
	Code    InitializationErrorCode
	Message string
}

func (e *InitializationError) Error() string { return e.Message }
