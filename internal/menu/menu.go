// Package menu holds the static dish collection shown in the gallery.
//
// The collection is bundled with the binary and loaded once at startup.
// Dishes and their comments are never mutated after loading.
package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"pastamakers/internal/jsonutil"
)

//go:embed menu.json
var embedded []byte

// ErrEmptyMenu is returned when the dish collection has no entries.
var ErrEmptyMenu = errors.New("menu has no dishes")

// Comment is a single customer review attached to a dish.
type Comment struct {
	ID      int    `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// Dish is a menu item with its reviews in stored order.
type Dish struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Comments    []Comment `json:"comments"`
}

// Load returns the bundled dish collection.
func Load() ([]Dish, error) {
	return Parse(embedded)
}

// LoadFile reads a dish collection from path instead of the bundled one.
func LoadFile(path string) ([]Dish, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of dishes. An empty array is an error.
func Parse(data []byte) ([]Dish, error) {
	dishes, err := jsonutil.UnmarshalArray[Dish](data, "parse menu")
	if errors.Is(err, jsonutil.ErrEmpty) {
		return nil, ErrEmptyMenu
	}
	if err != nil {
		return nil, err
	}
	return dishes, nil
}
