// Package choice defines the engine's sole suspension point contract
// (spec.md §6): ChoiceRequest/ChoiceResult, the factory that builds
// requests from an ActionDescriptor, and the validator that checks a
// returned ChoiceResult against what was asked for.
package choice

import "github.com/google/uuid"

// ChoiceType is the kind of input a ChoiceRequest is asking for.
type ChoiceType int

const (
	SelectTargets ChoiceType = iota
	SelectCards
	SelectOption
	Confirm
)

// FilterType constrains which seats are legal targets.
type FilterType int

const (
	Any FilterType = iota
	Enemies
	SelfOrFriends
	Self
)

// TargetConstraints bounds how many targets a ChoiceRequest may select and
// which seats qualify.
type TargetConstraints struct {
	MinTargets int
	MaxTargets int
	FilterType FilterType
}

// ChoiceRequest is handed to the external choice oracle (spec.md §6).
type ChoiceRequest struct {
	RequestId         string
	PlayerSeat        int
	ChoiceType        ChoiceType
	TargetConstraints *TargetConstraints
	AllowedCards      []int
	CanPass           bool
	DisplayKey        string
}

// ChoiceResult is the oracle's answer. A "pass" is represented by empty
// selections when CanPass is true.
type ChoiceResult struct {
	RequestId           string
	PlayerSeat          int
	SelectedTargetSeats []int
	SelectedCardIds     []int
	SelectedOptionId    string
	Confirmed           bool
}

// Oracle is the synchronous choice function every resolver suspends on.
// In production it may block on a network peer; in replay it reads the
// next queued choice; in tests it is a function literal.
type Oracle func(ChoiceRequest) ChoiceResult

// NewRequestId mints a fresh RequestId via google/uuid, the same dependency
// the teacher's internal/ports/nakama/hooks.go uses for device IDs.
func NewRequestId() string {
	return uuid.New().String()
}
