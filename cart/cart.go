package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Rajender1411/canteen-savor-hub/models"
	"github.com/Rajender1411/canteen-savor-hub/notify"
	"github.com/Rajender1411/canteen-savor-hub/storage"
)

// DefaultKey is the storage key for a standalone cart.
const DefaultKey = "cart"

// Manager owns one cart: an ordered sequence of lines with write-through
// persistence under a single storage key. Insertion order is preserved
// across quantity edits. Totals are recomputed on every read, never
// cached. A mutex keeps each mutation, including its persistence write,
// atomic with respect to concurrent requests.
type Manager struct {
	mu    sync.Mutex
	key   string
	lines []models.CartLine
	open  bool

	store storage.Store
	notif notify.Notifier
	log   *zap.Logger
}

// NewManager builds a cart bound to a storage key and rehydrates any
// previously saved lines. Corrupt or missing saved state silently
// falls back to an empty cart.
func NewManager(store storage.Store, notif notify.Notifier, log *zap.Logger, key string) *Manager {
	m := &Manager{
		key:   key,
		store: store,
		notif: notif,
		log:   log,
	}
	m.rehydrate()
	return m
}

func (m *Manager) rehydrate() {
	data, err := m.store.Get(context.Background(), m.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Debug("cart: could not read saved state", zap.String("key", m.key), zap.Error(err))
		}
		return
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		m.log.Debug("cart: discarding unreadable saved state", zap.String("key", m.key), zap.Error(err))
		return
	}
	m.lines = lines
}

// persist writes the full current line sequence. Called under m.mu.
// A storage failure is logged and otherwise swallowed: cart mutations
// have no error conditions.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.lines)
	if err != nil {
		m.log.Warn("cart: failed to serialize", zap.Error(err))
		return
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		m.log.Warn("cart: failed to persist", zap.String("key", m.key), zap.Error(err))
	}
}

// Add puts an item in the cart. Re-adding an item id merges quantities
// into the existing line; the existing line's customizations win and
// the new ones are dropped. Customization price deltas are recorded as
// labels only and never feed into Subtotal, matching the storefront's
// long-standing pricing behavior.
func (m *Manager) Add(ctx context.Context, item models.MenuItem, quantity int, customizations []string) AddOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	line := models.CartLine{
		ID:             item.ID,
		Name:           item.Name,
		Price:          item.Price,
		Quantity:       quantity,
		Image:          item.Image,
		Category:       item.Category,
		Customizations: customizations,
	}
	lines, outcome := addLine(m.lines, line)
	m.lines = lines
	m.persist(ctx)

	if outcome == LineUpdated {
		m.notif.Success("Updated " + item.Name + " quantity in cart")
	} else {
		m.notif.Success("Added " + item.Name + " to cart")
	}
	return outcome
}

// Remove drops the line with the given item id. A missing id is a
// valid no-op and emits no notification.
func (m *Manager) Remove(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := ""
	for _, l := range m.lines {
		if l.ID == id {
			name = l.Name
			break
		}
	}
	lines, removed := removeLine(m.lines, id)
	m.lines = lines
	if !removed {
		return
	}
	m.persist(ctx)
	m.notif.Info("Removed " + name + " from cart")
}

// SetQuantity replaces a line's quantity in place. A quantity of zero
// or below behaves exactly like Remove. Unknown ids are a no-op.
func (m *Manager) SetQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		m.Remove(ctx, id)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	lines, changed := setQuantity(m.lines, id, quantity)
	if !changed {
		return
	}
	m.lines = lines
	m.persist(ctx)
}

// Clear empties the cart unconditionally.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.persist(ctx)
	m.notif.Info("Cart cleared")
}

// Lines returns the current lines in insertion order.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalItems(m.lines)
}

// Subtotal is the sum of snapshot price times quantity across all lines.
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return subtotal(m.lines)
}

// Open reports the cart panel visibility flag. The flag is UI state:
// it is never persisted and resets each session.
func (m *Manager) Open() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// SetOpen sets the cart panel visibility flag.
func (m *Manager) SetOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = open
}
