package session

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rajender1411/canteen-savor-hub/models"
	"github.com/Rajender1411/canteen-savor-hub/notify"
	"github.com/Rajender1411/canteen-savor-hub/storage"
)

// StorageKey holds the persisted identity record.
const StorageKey = "user"

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validation errors returned by LoginAsUser.
var (
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")
)

// Manager owns the optional current identity: zero or one principal is
// signed in at any time. Credential checks are mocked against fixed
// configured admin credentials; regular users sign in with just a name
// and mobile number. The identity is persisted across restarts under
// StorageKey.
type Manager struct {
	mu         sync.Mutex
	current    *models.Identity
	signInOpen bool

	adminUsername string
	adminHash     []byte

	store storage.Store
	notif notify.Notifier
	log   *zap.Logger
}

// NewManager builds the session container and rehydrates any persisted
// identity. A corrupt saved record degrades to anonymous.
func NewManager(store storage.Store, notif notify.Notifier, log *zap.Logger, adminUsername, adminPassword string) *Manager {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn("session: failed to hash admin password", zap.Error(err))
	}
	m := &Manager{
		adminUsername: adminUsername,
		adminHash:     hash,
		store:         store,
		notif:         notif,
		log:           log,
	}
	m.rehydrate()
	return m
}

func (m *Manager) rehydrate() {
	data, err := m.store.Get(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.Debug("session: could not read saved identity", zap.Error(err))
		}
		return
	}
	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		m.log.Debug("session: discarding unreadable saved identity", zap.Error(err))
		return
	}
	m.current = &id
}

// persist writes the current identity. Called under m.mu.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.current)
	if err != nil {
		m.log.Warn("session: failed to serialize identity", zap.Error(err))
		return
	}
	if err := m.store.Set(ctx, StorageKey, data); err != nil {
		m.log.Warn("session: failed to persist identity", zap.Error(err))
	}
}

// LoginAsUser signs in a regular user. The name must be non-empty and
// the mobile number exactly 10 digits; a validation failure returns a
// descriptive error and leaves any existing session untouched. Success
// mints a fresh unique identifier and closes the sign-in panel.
func (m *Manager) LoginAsUser(ctx context.Context, name, mobile string) (models.Identity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Identity{}, ErrNameRequired
	}
	if !mobilePattern.MatchString(mobile) {
		return models.Identity{}, ErrInvalidMobile
	}

	identity := models.Identity{
		ID:      "user-" + uuid.NewString(),
		Name:    name,
		Mobile:  mobile,
		IsAdmin: false,
	}

	m.mu.Lock()
	m.current = &identity
	m.signInOpen = false
	m.persist(ctx)
	m.mu.Unlock()

	m.notif.Success("Welcome, " + name + "!")
	return identity, nil
}

// LoginAsAdmin checks the given credentials against the configured
// admin pair. Failure is reported as a false result, never an error,
// and leaves any prior session unchanged.
func (m *Manager) LoginAsAdmin(ctx context.Context, username, password string) (models.Identity, bool) {
	if username != m.adminUsername ||
		bcrypt.CompareHashAndPassword(m.adminHash, []byte(password)) != nil {
		m.notif.Error("Invalid admin credentials")
		return models.Identity{}, false
	}

	identity := models.Identity{
		ID:      "admin",
		Name:    "Administrator",
		Mobile:  "",
		IsAdmin: true,
	}

	m.mu.Lock()
	m.current = &identity
	m.signInOpen = false
	m.persist(ctx)
	m.mu.Unlock()

	m.notif.Success("Admin login successful")
	return identity, true
}

// Logout clears the current identity and removes it from storage.
// Logging out while anonymous is a harmless no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	if err := m.store.Delete(ctx, StorageKey); err != nil {
		m.log.Warn("session: failed to remove persisted identity", zap.Error(err))
	}
	m.mu.Unlock()

	m.notif.Info("Logged out successfully")
}

// Current returns the signed-in identity, if any.
func (m *Manager) Current() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.Identity{}, false
	}
	return *m.current, true
}

// IsAuthenticated reports whether any principal is signed in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// IsAdmin reports whether the administrator is signed in.
func (m *Manager) IsAdmin() bool {
	id, ok := m.Current()
	return ok && id.IsAdmin
}

// State maps the current identity onto the sign-in lifecycle.
func (m *Manager) State() State {
	id, ok := m.Current()
	switch {
	case !ok:
		return StateAnonymous
	case id.IsAdmin:
		return StateAdmin
	default:
		return StateUser
	}
}

// SignInOpen reports the sign-in panel visibility flag. UI state only,
// never persisted.
func (m *Manager) SignInOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signInOpen
}

// SetSignInOpen sets the sign-in panel visibility flag.
func (m *Manager) SetSignInOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signInOpen = open
}
