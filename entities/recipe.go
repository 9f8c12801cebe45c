package entities

type Recipe struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;not null;index" json:"name"`
	CookTimeMinutes int    `gorm:"not null" json:"cook_time_minutes"`
	Views           int    `gorm:"not null;default:0" json:"views"`
	Description     string `gorm:"type:text;not null" json:"description"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Name     string `gorm:"size:200;not null" json:"name"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
