package replay

import (
	"fmt"

	"legendcore/internal/choice"
)

// errChoiceSequenceExhausted is passed to the QueuedOracle's onFatal
// callback when a replay consumes more choices than its recorded sequence
// holds — a replay record must
// exactly cover every suspension point the original game produced, per
// spec.md §6.
var errChoiceSequenceExhausted = fmt.Errorf("replay: choice sequence exhausted")

// QueuedOracle replays a pre-recorded ChoiceResult sequence in order,
// ignoring the live ChoiceRequest's content except for copying its
// RequestId onto the returned result (the seat is not checked), the way a
// deterministic replay must: the recorded results already
// encode whatever the original oracle decided.
//
// Grounded on the teacher's rng-as-constructor-argument determinism
// pattern, generalized from "one injected RNG" to "one injected choice
// sequence" for the non-RNG suspension points.
type QueuedOracle struct {
	results []choice.ChoiceResult
	index   int
	onFatal func(error)
}

// NewQueuedOracle wraps a recorded sequence. onFatal is invoked (if
// non-nil) when the sequence is exhausted before the game finished,
// instead of panicking the whole process.
func NewQueuedOracle(results []choice.ChoiceResult, onFatal func(error)) *QueuedOracle {
	return &QueuedOracle{results: results, onFatal: onFatal}
}

// Oracle returns the choice.Oracle function bound to this queue.
func (q *QueuedOracle) Oracle() choice.Oracle {
	return func(req choice.ChoiceRequest) choice.ChoiceResult {
		if q.index >= len(q.results) {
			if q.onFatal != nil {
				q.onFatal(errChoiceSequenceExhausted)
			}
			return choice.ChoiceResult{RequestId: req.RequestId, PlayerSeat: req.PlayerSeat}
		}
		result := q.results[q.index]
		q.index++
		result.RequestId = req.RequestId
		return result
	}
}

// Remaining reports how many recorded choices have not yet been consumed.
func (q *QueuedOracle) Remaining() int {
	return len(q.results) - q.index
}
