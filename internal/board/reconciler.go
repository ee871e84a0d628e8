package board

import "smoothbux-be/internal/order"

// Event marks an order observed reaching ready for the first time.
type Event struct {
	Order *order.Order
}

// Reconcile compares a freshly fetched order list against the previous
// poll's snapshot and returns one event per order that is ready now but
// was not ready before (or did not exist before). Pure; callers decide
// what to do with the events.
//
// With an empty previous snapshot every ready order is flagged, so the
// very first poll of a session fires for orders that were ready all
// along. Boards opening mid-rush announce the waiting pickups instead
// of staying silent.
func Reconcile(previous, current []*order.Order) []Event {
	prevStatus := make(map[string]order.OrderStatus, len(previous))
	for _, o := range previous {
		prevStatus[o.ID] = o.Status
	}

	var events []Event
	for _, o := range current {
		if o.Status != order.StatusReady {
			continue
		}
		if st, seen := prevStatus[o.ID]; !seen || st != order.StatusReady {
			events = append(events, Event{Order: o})
		}
	}
	return events
}

// Reconciler owns the last-seen snapshot for one polling session.
type Reconciler struct {
	prev []*order.Order
}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Observe reconciles the new snapshot against the stored one and then
// replaces the stored snapshot unconditionally, events or not.
func (r *Reconciler) Observe(current []*order.Order) []Event {
	events := Reconcile(r.prev, current)
	r.prev = current
	return events
}

// Snapshot returns the last observed order list.
func (r *Reconciler) Snapshot() []*order.Order {
	return r.prev
}
