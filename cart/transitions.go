package cart

import "github.com/Rajender1411/canteen-savor-hub/models"

// AddOutcome says whether an add created a new line or merged into an
// existing one.
type AddOutcome int

const (
	LineCreated AddOutcome = iota
	LineUpdated
)

// The functions below are the pure cart transitions: lines in, lines
// out, no storage or notification side effects. The Manager wraps them
// with write-through persistence.

// addLine appends a new line, or merges the quantity into the line that
// already carries the same item id. On merge the existing line keeps
// its customizations; the incoming ones are dropped.
func addLine(lines []models.CartLine, line models.CartLine) ([]models.CartLine, AddOutcome) {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == line.ID {
			out[i].Quantity += line.Quantity
			return out, LineUpdated
		}
	}
	return append(out, line), LineCreated
}

// removeLine drops the line with the given id. Reports whether a line
// was actually removed; a missing id is a no-op.
func removeLine(lines []models.CartLine, id string) ([]models.CartLine, bool) {
	out := make([]models.CartLine, 0, len(lines))
	removed := false
	for _, l := range lines {
		if l.ID == id {
			removed = true
			continue
		}
		out = append(out, l)
	}
	return out, removed
}

// setQuantity replaces the quantity of the matching line in place,
// preserving its position. A quantity of zero or below removes the
// line entirely.
func setQuantity(lines []models.CartLine, id string, quantity int) ([]models.CartLine, bool) {
	if quantity <= 0 {
		return removeLine(lines, id)
	}
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = quantity
			return out, true
		}
	}
	return out, false
}

// totalItems sums the quantities across all lines.
func totalItems(lines []models.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// subtotal sums price times quantity using each line's snapshot price.
// Customization price deltas are not included; see the note on Add.
func subtotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
