package dto

// CategoryItem is a single selectable category within a group
type CategoryItem struct {
	ID   string `json:"id" validate:"required,min=1,max=100"`
	Icon string `json:"icon" validate:"required,min=1,max=16"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// GroupedCategoriesResponse maps group names to their ordered categories
type GroupedCategoriesResponse struct {
	Categories map[string][]CategoryItem `json:"categories"`
	IsDefault  bool                      `json:"isDefault"`
}

// SaveCategoriesRequest replaces the user's full category set
type SaveCategoriesRequest struct {
	Categories map[string][]CategoryItem `json:"categories" validate:"required,min=1,dive,required,min=1,dive"`
}
