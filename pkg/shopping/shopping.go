package shopping

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/korjavin/pantrychef/pkg/category"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/matcher"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// ErrItemNotFound is returned when an item id is not on the list
var ErrItemNotFound = errors.New("shopping item not found")

// Service manages the shopping list of each chat
type Service struct {
	store  storage.KV
	logger *logger.Logger
}

// New creates a new shopping list service
func New(store storage.KV) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func key(chatID int64) string {
	return fmt.Sprintf("shopping:%d", chatID)
}

// Get retrieves the shopping list for a chat, or an empty one
func (s *Service) Get(chatID int64) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.store.Get(key(chatID), &list)
	if err == nil {
		return &list, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}

	return &models.ShoppingList{
		ID:     key(chatID),
		ChatID: chatID,
		Items:  []models.ShoppingItem{},
	}, nil
}

func (s *Service) save(list *models.ShoppingList) error {
	list.LastUpdated = time.Now()
	if err := s.store.Set(list.ID, list); err != nil {
		return fmt.Errorf("failed to save shopping list: %w", err)
	}
	return nil
}

// Add puts names on the list. A name already on the list and not yet checked
// off (ignoring case) is skipped. It returns the items that were added.
func (s *Service) Add(chatID int64, names ...string) ([]models.ShoppingItem, error) {
	list, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	pending := make(map[string]bool)
	for _, item := range list.Items {
		if !item.Checked {
			pending[strings.ToLower(item.Name)] = true
		}
	}

	var added []models.ShoppingItem
	for _, name := range names {
		name = strings.TrimSpace(name)
		lower := strings.ToLower(name)
		if name == "" || pending[lower] {
			continue
		}
		pending[lower] = true

		item := models.ShoppingItem{
			ID:       uuid.NewString(),
			Name:     name,
			Category: string(category.Categorize(name)),
			AddedAt:  time.Now(),
		}
		list.Items = append(list.Items, item)
		added = append(added, item)
	}

	if len(added) == 0 {
		return nil, nil
	}
	if err := s.save(list); err != nil {
		return nil, err
	}
	return added, nil
}

// AddMissing puts every ingredient line of recipe that pantry does not satisfy on the list
func (s *Service) AddMissing(chatID int64, recipe models.Recipe, pantry []string) ([]models.ShoppingItem, error) {
	missing := matcher.Missing(recipe.Ingredients, pantry)
	s.logger.Debug("recipe %s is missing %d of %d ingredients", recipe.ID, len(missing), len(recipe.Ingredients))
	return s.Add(chatID, missing...)
}

// Toggle flips the checked state of an item and returns the updated item
func (s *Service) Toggle(chatID int64, id string) (*models.ShoppingItem, error) {
	list, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	for i := range list.Items {
		if list.Items[i].ID == id {
			list.Items[i].Checked = !list.Items[i].Checked
			item := list.Items[i]
			return &item, s.save(list)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Remove deletes an item from the list
func (s *Service) Remove(chatID int64, id string) error {
	list, err := s.Get(chatID)
	if err != nil {
		return err
	}

	for i, item := range list.Items {
		if item.ID == id {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return s.save(list)
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// ClearChecked removes every checked item and returns how many were removed
func (s *Service) ClearChecked(chatID int64) (int, error) {
	list, err := s.Get(chatID)
	if err != nil {
		return 0, err
	}

	kept := list.Items[:0]
	for _, item := range list.Items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	removed := len(list.Items) - len(kept)
	list.Items = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.save(list)
}

// List returns unchecked items first, then checked ones, each in the order added
func (s *Service) List(chatID int64) ([]models.ShoppingItem, error) {
	list, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	out := make([]models.ShoppingItem, 0, len(list.Items))
	for _, item := range list.Items {
		if !item.Checked {
			out = append(out, item)
		}
	}
	for _, item := range list.Items {
		if item.Checked {
			out = append(out, item)
		}
	}
	return out, nil
}
