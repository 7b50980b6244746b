package models

import (
	"time"
)

// Recipe is an immutable catalog entry
type Recipe struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	ImageURL     string    `json:"image_url" yaml:"image_url"`
	CookTime     string    `json:"cook_time" yaml:"cook_time"` // free text, e.g. "20 mins"
	Servings     string    `json:"servings" yaml:"servings"`   // free text, e.g. "4 servings"
	Ingredients  []string  `json:"ingredients" yaml:"ingredients"`
	Instructions []string  `json:"instructions" yaml:"instructions"`
	Nutrition    Nutrition `json:"nutrition" yaml:"nutrition"`
}

// Nutrition holds the free-text nutrition facts of a recipe
type Nutrition struct {
	Calories string `json:"calories" yaml:"calories"`
	Protein  string `json:"protein" yaml:"protein"`
	Carbs    string `json:"carbs" yaml:"carbs"`
	Fat      string `json:"fat" yaml:"fat"`
}

// Pantry is the list of ingredient names a chat has on hand
type Pantry struct {
	ID          string    `json:"id"`
	ChatID      int64     `json:"chat_id"`
	Ingredients []string  `json:"ingredients"`
	LastUpdated time.Time `json:"last_updated"`
}

// Inventory holds the categorized items a chat keeps in stock
type Inventory struct {
	ID          string          `json:"id"`
	ChatID      int64           `json:"chat_id"`
	Items       []InventoryItem `json:"items"`
	LastUpdated time.Time       `json:"last_updated"`
}

// InventoryItem represents a single stocked item
type InventoryItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Category string    `json:"category"`
	AddedAt  time.Time `json:"added_at"`
}

// ShoppingList holds the items a chat still has to buy
type ShoppingList struct {
	ID          string         `json:"id"`
	ChatID      int64          `json:"chat_id"`
	Items       []ShoppingItem `json:"items"`
	LastUpdated time.Time      `json:"last_updated"`
}

// ShoppingItem represents a single line of the shopping list
type ShoppingItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Checked  bool      `json:"checked"`
	AddedAt  time.Time `json:"added_at"`
}
