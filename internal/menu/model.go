package menu

import "time"

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Ingredients []string  `json:"ingredients"`
	IsAvailable bool      `json:"is_available"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuOption is a customization choice (boost, juice) offered alongside
// the menu items.
type MenuOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
}

type CreateItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	IsAvailable bool     `json:"is_available"`
	Category    string   `json:"category"`
}

type CreateOptionInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
