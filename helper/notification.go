package helper

import (
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"
	"gopkg.in/gomail.v2"

	"studio_booking/config"
	"studio_booking/model"
)

// Notifier records customer notifications and optionally fans them out by
// email. It is called after the owning transaction commits; failures are
// logged and never surface to the business flow that triggered them.
type Notifier struct {
	DB       *gorm.DB
	SendMail bool
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{DB: db, SendMail: config.Config("SMTP_HOST") != ""}
}

func (n *Notifier) Notify(userID uint, title, message string) {
	notification := model.Notification{
		Title:   title,
		Message: message,
		UserID:  userID,
	}
	if err := n.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to record notification for user %d: %v", userID, err)
		return
	}

	if n.SendMail {
		go n.sendEmail(userID, title, message)
	}
}

func (n *Notifier) sendEmail(userID uint, title, message string) {
	var user model.User
	if err := n.DB.First(&user, userID).Error; err != nil || user.Email == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("Studio Booking <%s>", config.Config("SMTP_USERNAME")))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", message)

	port, err := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to email notification to %s: %v", user.Email, err)
	}
}
