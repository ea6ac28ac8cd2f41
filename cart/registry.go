package cart

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Rajender1411/canteen-savor-hub/notify"
	"github.com/Rajender1411/canteen-savor-hub/storage"
)

// Registry hands out one cart Manager per owner: the signed-in
// identity, or a client-supplied guest token before sign-in. Each
// manager is created and rehydrated on first use and then reused.
type Registry struct {
	mu       sync.Mutex
	managers map[string]*Manager

	store storage.Store
	notif notify.Notifier
	log   *zap.Logger
}

func NewRegistry(store storage.Store, notif notify.Notifier, log *zap.Logger) *Registry {
	return &Registry{
		managers: make(map[string]*Manager),
		store:    store,
		notif:    notif,
		log:      log,
	}
}

// For returns the cart for one owner, creating it on first use.
func (r *Registry) For(owner string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[owner]; ok {
		return m
	}
	m := NewManager(r.store, r.notif, r.log, DefaultKey+":"+owner)
	r.managers[owner] = m
	return m
}

// Owners lists every owner with an instantiated cart, sorted for
// stable output.
func (r *Registry) Owners() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.managers))
	for owner := range r.managers {
		out = append(out, owner)
	}
	sort.Strings(out)
	return out
}
