package model

type User struct {
	DTO
	Fullname    string `json:"fullname"`
	Email       string `gorm:"unique;not null" json:"email"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"default:customer" json:"role"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
