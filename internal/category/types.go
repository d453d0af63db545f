package category

import "strings"

// Category is a named grouping of tasks, unique per user.
type Category struct {
	ID   int64
	Name string
}

// ValidateName trims and checks a category name. Returns the trimmed name.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name string
}

type UpdateInput struct {
	ID   int64
	Name string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Category Category
}

type ListOutput struct {
	Categories []Category
}

type UpdateOutput struct {
	Category Category
}

// DeleteOutput reports how many member tasks the cascade removed alongside
// the category. The dashboard uses it for the confirmation message.
type DeleteOutput struct {
	DeletedTasks int
}
