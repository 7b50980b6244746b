package pantry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// Service keeps the list of ingredient names each chat has on hand
type Service struct {
	store  storage.KV
	logger *logger.Logger
}

// New creates a new pantry service
func New(store storage.KV) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func key(chatID int64) string {
	return fmt.Sprintf("pantry:%d", chatID)
}

// Get retrieves the pantry for a chat, or an empty one if none was saved yet
func (s *Service) Get(chatID int64) (*models.Pantry, error) {
	var p models.Pantry
	err := s.store.Get(key(chatID), &p)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	return &models.Pantry{
		ID:          key(chatID),
		ChatID:      chatID,
		Ingredients: []string{},
		LastUpdated: time.Now(),
	}, nil
}

func (s *Service) save(p *models.Pantry) error {
	p.LastUpdated = time.Now()
	if err := s.store.Set(p.ID, p); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	return nil
}

// List returns the ingredient names in the order they were added
func (s *Service) List(chatID int64) ([]string, error) {
	p, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	return p.Ingredients, nil
}

// Add appends names to the pantry. Names are trimmed; empty names and exact
// duplicates are skipped. It returns the names that were actually added.
func (s *Service) Add(chatID int64, names ...string) ([]string, error) {
	p, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(p.Ingredients))
	for _, name := range p.Ingredients {
		have[name] = true
	}

	var added []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || have[name] {
			continue
		}
		have[name] = true
		p.Ingredients = append(p.Ingredients, name)
		added = append(added, name)
	}

	if len(added) == 0 {
		return nil, nil
	}

	s.logger.Debug("adding %d ingredients to %s", len(added), p.ID)
	return added, s.save(p)
}

// Remove deletes name from the pantry. It reports whether the name was present.
func (s *Service) Remove(chatID int64, name string) (bool, error) {
	p, err := s.Get(chatID)
	if err != nil {
		return false, err
	}

	name = strings.TrimSpace(name)
	for i, existing := range p.Ingredients {
		if existing == name {
			p.Ingredients = append(p.Ingredients[:i], p.Ingredients[i+1:]...)
			return true, s.save(p)
		}
	}
	return false, nil
}

// Clear empties the pantry for a chat
func (s *Service) Clear(chatID int64) error {
	return s.save(&models.Pantry{
		ID:          key(chatID),
		ChatID:      chatID,
		Ingredients: []string{},
	})
}
