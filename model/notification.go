package model

type Notification struct {
	DTO
	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
}
