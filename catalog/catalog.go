package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Rajender1411/canteen-savor-hub/models"
)

// Provider owns the read-only menu catalog. Items become available once
// Load completes; every filter preserves catalog declaration order.
// There are no mutation operations.
type Provider struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	loaded bool

	fetch func(ctx context.Context) ([]models.MenuItem, error)
	delay time.Duration
	log   *zap.Logger
}

func NewProvider(delay time.Duration, log *zap.Logger) *Provider {
	return &Provider{
		fetch: func(context.Context) ([]models.MenuItem, error) {
			return defaultItems, nil
		},
		delay: delay,
		log:   log,
	}
}

// Load fetches the catalog after a fixed simulated latency. A failed
// load leaves the provider unloaded; callers retry by invoking Load
// again. Cancelling the context abandons the wait.
func (p *Provider) Load(ctx context.Context) error {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	items, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.items = nil
		p.loaded = false
		p.log.Warn("failed to load menu items", zap.Error(err))
		return fmt.Errorf("load menu catalog: %w", err)
	}
	p.items = items
	p.loaded = true
	p.log.Info("menu catalog loaded", zap.Int("items", len(items)))
	return nil
}

// Loaded reports whether a Load has completed successfully.
func (p *Provider) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Items returns the full catalog in declaration order.
func (p *Provider) Items() []models.MenuItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.MenuItem, len(p.items))
	copy(out, p.items)
	return out
}

// ByCategory returns the items in one section, in catalog order.
// Unknown categories yield an empty slice, not an error.
func (p *Provider) ByCategory(category models.MenuCategory) []models.MenuItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.MenuItem, 0)
	for _, item := range p.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Specials returns the items flagged for promotional display.
func (p *Provider) Specials() []models.MenuItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.MenuItem, 0)
	for _, item := range p.items {
		if item.IsSpecial {
			out = append(out, item)
		}
	}
	return out
}

// ByID looks up a single item. A missing id is a valid result that
// callers tolerate, not an error.
func (p *Provider) ByID(id string) (models.MenuItem, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, item := range p.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
