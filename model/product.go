package model

type Product struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"unique" json:"slug"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Duration    int    `json:"duration"` // hours per session
	CategoryID  uint   `json:"categoryId"`

	Category Category `json:"category"`
}
