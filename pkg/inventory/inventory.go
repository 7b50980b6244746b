package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/korjavin/pantrychef/pkg/category"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// ErrItemNotFound is returned when an item id is not in the inventory
var ErrItemNotFound = errors.New("inventory item not found")

// Service manages the categorized stock of each chat
type Service struct {
	store  storage.KV
	logger *logger.Logger
}

// Group is a category with its items, used for display
type Group struct {
	Category category.Category
	Items    []models.InventoryItem
}

// New creates a new inventory service
func New(store storage.KV) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func key(chatID int64) string {
	return fmt.Sprintf("inventory:%d", chatID)
}

// Get retrieves the inventory for a chat, or an empty one
func (s *Service) Get(chatID int64) (*models.Inventory, error) {
	var inv models.Inventory
	err := s.store.Get(key(chatID), &inv)
	if err == nil {
		return &inv, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	return &models.Inventory{
		ID:     key(chatID),
		ChatID: chatID,
		Items:  []models.InventoryItem{},
	}, nil
}

func (s *Service) save(inv *models.Inventory) error {
	inv.LastUpdated = time.Now()
	if err := s.store.Set(inv.ID, inv); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}

// Add stocks an item, tagging its category from the name
func (s *Service) Add(chatID int64, name, quantity string) (*models.InventoryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is empty")
	}

	inv, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: strings.TrimSpace(quantity),
		Category: string(category.Categorize(name)),
		AddedAt:  time.Now(),
	}
	inv.Items = append(inv.Items, item)

	if err := s.save(inv); err != nil {
		return nil, err
	}
	s.logger.Debug("stocked %s (%s) in %s", item.Name, item.Category, inv.ID)
	return &item, nil
}

// Remove deletes the item with the given id
func (s *Service) Remove(chatID int64, id string) error {
	inv, err := s.Get(chatID)
	if err != nil {
		return err
	}

	for i, item := range inv.Items {
		if item.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return s.save(inv)
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// List returns items in the order they were added
func (s *Service) List(chatID int64) ([]models.InventoryItem, error) {
	inv, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	return inv.Items, nil
}

// Names returns the item names, for matching against recipes
func (s *Service) Names(chatID int64) ([]string, error) {
	items, err := s.List(chatID)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}

// GroupByCategory returns the non-empty categories in category.Order
func (s *Service) GroupByCategory(chatID int64) ([]Group, error) {
	items, err := s.List(chatID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[category.Category][]models.InventoryItem)
	for _, item := range items {
		c := category.Category(item.Category)
		byCategory[c] = append(byCategory[c], item)
	}

	var groups []Group
	for _, c := range category.Order {
		if len(byCategory[c]) > 0 {
			groups = append(groups, Group{Category: c, Items: byCategory[c]})
		}
	}
	return groups, nil
}
