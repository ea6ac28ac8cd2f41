package session

// State classifies the sign-in lifecycle position.
type State string

const (
	StateAnonymous State = "ANONYMOUS"
	StateUser      State = "USER_SESSION"
	StateAdmin     State = "ADMIN_SESSION"
)

// Transition defines a valid lifecycle change and the action driving it
type Transition struct {
	From   State
	To     State
	Action string
}

// validTransitions is the authoritative lifecycle definition
var validTransitions = []Transition{
	{From: StateAnonymous, To: StateUser, Action: "user login"},
	{From: StateAnonymous, To: StateAdmin, Action: "admin login"},
	{From: StateUser, To: StateAnonymous, Action: "logout"},
	{From: StateAdmin, To: StateAnonymous, Action: "logout"},
}

type transitionKey struct {
	From State
	To   State
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// CanTransition reports whether the lifecycle allows the change.
func CanTransition(from, to State) bool {
	return transitionMap[transitionKey{from, to}]
}

// AllTransitions returns the full lifecycle for documentation
func AllTransitions() []Transition {
	return validTransitions
}
