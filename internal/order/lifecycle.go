package order

// The fulfillment sequence is linear with no back-transitions:
//
//	pending --(start)--> blending --(finish)--> ready --(collect)--> completed
//
// Engine is the sole authority on which transitions a staff action may
// apply. In permissive mode any canonical status is accepted (the
// operator can correct a mis-click); in strict mode only the adjacent
// forward step is.
type Engine struct {
	strict bool
}

func NewEngine(strict bool) *Engine {
	return &Engine{strict: strict}
}

var sequence = []OrderStatus{StatusPending, StatusBlending, StatusReady, StatusCompleted}

// Canonical reports whether the status is one of the four known values.
func Canonical(status OrderStatus) bool {
	for _, s := range sequence {
		if s == status {
			return true
		}
	}
	return false
}

// Next returns the forward neighbor of a status. The second return is
// false for completed (terminal) and for unknown statuses.
func Next(status OrderStatus) (OrderStatus, bool) {
	for i, s := range sequence {
		if s == status && i+1 < len(sequence) {
			return sequence[i+1], true
		}
	}
	return "", false
}

// Action names the staff action that moves an order out of the given
// status: start, finish, collect. Terminal and unknown statuses have
// no action.
func Action(status OrderStatus) (string, bool) {
	switch status {
	case StatusPending:
		return "start", true
	case StatusBlending:
		return "finish", true
	case StatusReady:
		return "collect", true
	default:
		return "", false
	}
}

// Validate decides whether an order currently in `current` may be moved
// to `target`. Unknown targets are always rejected.
func (e *Engine) Validate(current, target OrderStatus) error {
	if !Canonical(target) {
		return ErrUnknownStatus
	}

	if !e.strict {
		return nil
	}

	if current == StatusCompleted {
		return ErrOrderCompleted
	}

	next, ok := Next(current)
	if !ok || next != target {
		return ErrInvalidTransition
	}
	return nil
}

// CanCancel reports whether staff may cancel (hard delete) an order in
// the given status. Cancellation is not a status transition.
func (e *Engine) CanCancel(status OrderStatus) bool {
	if !e.strict {
		return true
	}
	return status != StatusCompleted
}

// Strict reports the configured sequencing mode.
func (e *Engine) Strict() bool {
	return e.strict
}
