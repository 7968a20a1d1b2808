package database

import (
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashPassword := string(bytes)

	users := []model.User{
		{Fullname: "Administrator", Email: "admin@studiobooking.id", Password: hashPassword, Role: constants.ROLE_ADMIN},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Photography Session", RequiresSchedule: true, WindowStartHour: 7, WindowEndHour: 17, DurationRule: model.DurationHourly},
		{Name: "Videography Session", RequiresSchedule: true, WindowStartHour: 7, WindowEndHour: 17, DurationRule: model.DurationHourly},
		{Name: "Monthly Studio Rental", RequiresSchedule: true, DurationRule: model.DurationMonthly},
		{Name: "Digital Package", RequiresSchedule: false},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}

	products := []model.Product{
		{Name: "Wedding Photo Package", Label: "Best Seller", Price: 2500000, Duration: 5, CategoryID: 1},
		{Name: "Graduation Photo Session", Label: "Popular", Price: 200000, Duration: 2, CategoryID: 1},
		{Name: "Company Profile Video", Price: 3500000, Duration: 8, CategoryID: 2},
		{Name: "Studio Rental Monthly", Price: 12000000, Duration: 720, CategoryID: 3},
		{Name: "Photo Editing Bundle", Price: 150000, Duration: 0, CategoryID: 4},
	}
	for _, product := range products {
		product.Slug = slug.Make(product.Name)
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}

	discounts := []model.DiscountCode{
		{Code: "WELCOME10", Percentage: 10},
		{Code: "LOYAL25", Percentage: 25},
	}
	for _, discount := range discounts {
		if err := db.Where(model.DiscountCode{Code: discount.Code}).FirstOrCreate(&discount).Error; err != nil {
			log.Println("failed to seed discount:", discount.Code, "error:", err)
		}
	}
}
