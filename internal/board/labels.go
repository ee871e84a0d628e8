package board

import "smoothbux-be/internal/order"

// Presentation is the customer-facing rendering of a status.
type Presentation struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

var presentations = map[order.OrderStatus]Presentation{
	order.StatusPending:   {Label: "Received", Style: "muted"},
	order.StatusBlending:  {Label: "Blending...", Style: "active"},
	order.StatusReady:     {Label: "Ready!", Style: "celebrate"},
	order.StatusCompleted: {Label: "Picked Up", Style: "done"},
}

// PresentationFor maps a status to its display config. Anything outside
// the four canonical values renders with the pending presentation.
func PresentationFor(status order.OrderStatus) Presentation {
	if p, ok := presentations[status]; ok {
		return p
	}
	return presentations[order.StatusPending]
}

// Label is the display string alone.
func Label(status order.OrderStatus) string {
	return PresentationFor(status).Label
}

// maxVisible caps the customer board at the ten most recent orders.
const maxVisible = 10

// Entry is one row on the customer board.
type Entry struct {
	Order        *order.Order `json:"order"`
	Presentation Presentation `json:"presentation"`
}

// Display annotates at most the ten most-recent orders in the order the
// store returned them (most-recent-first).
func Display(orders []*order.Order) []Entry {
	visible := orders
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}

	entries := make([]Entry, 0, len(visible))
	for _, o := range visible {
		entries = append(entries, Entry{Order: o, Presentation: PresentationFor(o.Status)})
	}
	return entries
}
