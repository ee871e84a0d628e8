package order

import "sort"

// QueueEntry is one actionable order on the staff board, annotated with
// the actions its current status allows.
type QueueEntry struct {
	Order   *Order   `json:"order"`
	Actions []string `json:"actions"`
}

// DeriveQueue builds the staff fulfillment view from a raw order list:
// completed orders are dropped, the rest are sorted oldest first so the
// queue is worked first-in-first-out. Pure; the input slice is not
// modified.
func DeriveQueue(orders []*Order) []*QueueEntry {
	entries := make([]*QueueEntry, 0, len(orders))
	for _, o := range orders {
		if o.Status == StatusCompleted {
			continue
		}
		entries = append(entries, &QueueEntry{
			Order:   o,
			Actions: actionsFor(o.Status),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Order.CreatedAt.Before(entries[j].Order.CreatedAt)
	})

	return entries
}

func actionsFor(status OrderStatus) []string {
	actions := []string{}
	if a, ok := Action(status); ok {
		actions = append(actions, a)
	}
	// Every non-terminal entry can also be cancelled.
	actions = append(actions, "cancel")
	return actions
}
