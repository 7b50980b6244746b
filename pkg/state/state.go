package state

import (
	"fmt"
	"sync"
	"time"
)

// State represents the conversational state of a chat
type State string

const (
	// StateNormal is the normal state
	StateNormal State = "normal"
	// StateAddingIngredients means plain text messages go into the pantry
	StateAddingIngredients State = "adding_ingredients"
	// StateAddingShopping means plain text messages go onto the shopping list
	StateAddingShopping State = "adding_shopping"
)

// DefaultTTL is how long a non-normal state lasts without activity
const DefaultTTL = 10 * time.Minute

// MinServings is the smallest serving count a recipe can be scaled to
const MinServings = 1

// ChatState represents the state of a chat
type ChatState struct {
	State     State
	Timestamp time.Time
}

// Manager manages chat states and the servings each chat picked per recipe
type Manager struct {
	mu       sync.Mutex
	states   map[int64]ChatState
	servings map[string]int
	ttl      time.Duration
	now      func() time.Time
}

// New creates a new state manager
func New() *Manager {
	return &Manager{
		states:   make(map[int64]ChatState),
		servings: make(map[string]int),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// SetState sets the state for a chat
func (m *Manager) SetState(chatID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = ChatState{
		State:     state,
		Timestamp: m.now(),
	}
}

// GetState gets the state for a chat. Expired states reset to StateNormal.
func (m *Manager) GetState(chatID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[chatID]
	if !ok {
		return StateNormal
	}
	if m.now().Sub(st.Timestamp) > m.ttl {
		delete(m.states, chatID)
		return StateNormal
	}
	return st.State
}

// ClearState clears the state for a chat
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}

func servingsKey(chatID int64, recipeID string) string {
	return fmt.Sprintf("%d:%s", chatID, recipeID)
}

// Servings returns the servings a chat picked for a recipe, or def if none
func (m *Manager) Servings(chatID int64, recipeID string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.servingsLocked(chatID, recipeID, def)
}

func (m *Manager) servingsLocked(chatID int64, recipeID string, def int) int {
	if n, ok := m.servings[servingsKey(chatID, recipeID)]; ok {
		return n
	}
	if def < MinServings {
		return MinServings
	}
	return def
}

// SetServings stores n, raised to MinServings if needed, and returns the stored value
func (m *Manager) SetServings(chatID int64, recipeID string, n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < MinServings {
		n = MinServings
	}
	m.servings[servingsKey(chatID, recipeID)] = n
	return n
}

// Increment adds one serving and returns the new count
func (m *Manager) Increment(chatID int64, recipeID string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.servingsLocked(chatID, recipeID, def) + 1
	m.servings[servingsKey(chatID, recipeID)] = n
	return n
}

// Decrement removes one serving, never going below MinServings, and returns the new count
func (m *Manager) Decrement(chatID int64, recipeID string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.servingsLocked(chatID, recipeID, def)
	if n > MinServings {
		n--
	}
	m.servings[servingsKey(chatID, recipeID)] = n
	return n
}

// CanDecrement reports whether servings can still be lowered
func CanDecrement(servings int) bool {
	return servings > MinServings
}

// Sweep drops expired states and returns how many were removed
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for chatID, st := range m.states {
		if now.Sub(st.Timestamp) > m.ttl {
			delete(m.states, chatID)
			removed++
		}
	}
	return removed
}
