package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives the informational messages the storefront shows as
// toasts: "Added Masala Dosa to cart", "Welcome, Rahul!" and so on.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// Logger emits notifications through a zap logger.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Success(msg string) { l.log.Info(msg, zap.String("kind", "success")) }
func (l *Logger) Info(msg string)    { l.log.Info(msg, zap.String("kind", "info")) }
func (l *Logger) Error(msg string)   { l.log.Warn(msg, zap.String("kind", "error")) }

// Event is one captured notification.
type Event struct {
	Kind    string
	Message string
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) { r.record("success", msg) }
func (r *Recorder) Info(msg string)    { r.record("info", msg) }
func (r *Recorder) Error(msg string)   { r.record("error", msg) }

func (r *Recorder) record(kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Message: msg})
}

// Events returns every captured notification in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
