package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one user-owned category row. Categories are presented grouped
// by GroupName and identified by a stable slug that survives re-saves.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_slug,priority:2" json:"slug"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_slug,priority:1" json:"user_id"`
	GroupName string    `gorm:"type:varchar(100);not null;index" json:"group_name"`
	Icon      string    `gorm:"type:varchar(16)" json:"icon"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) Validate() error {
	if c.Slug == "" {
		return errors.New("category slug is required")
	}

	if c.UserID == uuid.Nil {
		return errors.New("category owner is required")
	}

	if c.GroupName == "" {
		return errors.New("category group name is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	return nil
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryItem is a single category as exchanged with clients: the slug acts
// as the stable identifier.
type CategoryItem struct {
	ID   string `json:"id"`
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// GroupedCategories maps a group name to its ordered categories. The same
// shape is used for reads (category pickers) and writes (settings save).
type GroupedCategories map[string][]CategoryItem

// Count returns the total number of categories across all groups.
func (g GroupedCategories) Count() int {
	total := 0
	for _, items := range g {
		total += len(items)
	}
	return total
}

// DefaultCategories is the set every new user starts from. It is returned
// verbatim while the user has no stored categories; nothing is persisted
// until the user saves their own set.
func DefaultCategories() GroupedCategories {
	return GroupedCategories{
		"Advertising": {
			{ID: "digital-advertising", Icon: "📢", Name: "Digital advertising"},
			{ID: "outdoor-advertising", Icon: "🏟", Name: "Outdoor advertising"},
		},
		"Auto & Transport": {
			{ID: "auto-maintenance", Icon: "🔧", Name: "Auto maintenance"},
			{ID: "auto-payment", Icon: "🚗", Name: "Auto payment"},
			{ID: "gas", Icon: "⛽", Name: "Gas"},
			{ID: "parking-tolls", Icon: "🅿️", Name: "Parking & tolls"},
			{ID: "public-transit", Icon: "🚎", Name: "Public transit"},
			{ID: "taxi-ride-shares", Icon: "🚕", Name: "Taxi & ride shares"},
		},
		"Bills & Utilities": {
			{ID: "gas-electric", Icon: "⚡", Name: "Gas & electric"},
			{ID: "internet-cable", Icon: "🌐", Name: "Internet & cable"},
			{ID: "phone", Icon: "📱", Name: "Phone"},
			{ID: "water", Icon: "💧", Name: "Water"},
		},
		"Food & Dining": {
			{ID: "business-travel-meals", Icon: "🍽️", Name: "Business travel & meals"},
			{ID: "groceries", Icon: "🍎", Name: "Groceries"},
		},
		"Office": {
			{ID: "office-improvement", Icon: "🔧", Name: "Office improvement"},
			{ID: "office-supplies-expenses", Icon: "🖇", Name: "Office supplies & expenses"},
			{ID: "rent", Icon: "🏢", Name: "Rent"},
		},
		"Other": {
			{ID: "business-insurance", Icon: "📋", Name: "Business insurance"},
			{ID: "postage-shipping", Icon: "📦", Name: "Postage and shipping"},
			{ID: "uncategorized", Icon: "❓", Name: "Uncategorized"},
		},
		"Wages": {
			{ID: "employee-wages-contract-labor", Icon: "💰", Name: "Employee wages & contract labor"},
		},
		"Income": {
			{ID: "client-projects", Icon: "💼", Name: "Client Projects"},
			{ID: "recurring-revenue", Icon: "🔄", Name: "Recurring Revenue"},
			{ID: "consulting", Icon: "🎯", Name: "Consulting"},
			{ID: "product-sales", Icon: "🛍️", Name: "Product Sales"},
			{ID: "service-fees", Icon: "⚙️", Name: "Service Fees"},
			{ID: "licensing", Icon: "📜", Name: "Licensing"},
			{ID: "commission", Icon: "💵", Name: "Commission"},
			{ID: "grants-funding", Icon: "🏦", Name: "Grants & Funding"},
			{ID: "investment-income", Icon: "📈", Name: "Investment Income"},
			{ID: "other-income", Icon: "💰", Name: "Other Income"},
		},
	}
}
