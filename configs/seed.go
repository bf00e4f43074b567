package configs

import (
	"log"

	"github.com/rodriguezalexp/little-lemon-api/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedManager creates the first manager account from MANAGER_EMAIL /
// MANAGER_PASSWORD. Without a manager nobody can edit the menu or promote
// other accounts.
func SeedManager() error {
	email := getEnv("MANAGER_EMAIL", "")
	pass := getEnv("MANAGER_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding manager: missing MANAGER_EMAIL/MANAGER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("manager already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Manager",
		LastName:  "Seed",
		Role:      entity.RoleManager,
	}
	return db.Create(&manager).Error
}

// SeedMenu inserts a starter menu so a fresh instance has something to order.
func SeedMenu() error {
	mains := entity.Category{Title: "Mains", Slug: "mains"}
	desserts := entity.Category{Title: "Desserts", Slug: "desserts"}
	drinks := entity.Category{Title: "Drinks", Slug: "drinks"}
	for _, c := range []*entity.Category{&mains, &desserts, &drinks} {
		if err := db.FirstOrCreate(c, entity.Category{Slug: c.Slug}).Error; err != nil {
			return err
		}
	}

	items := []entity.MenuItem{
		{Title: "Greek Salad", Price: decimal.NewFromFloat(12.50), Featured: true, CategoryID: mains.ID},
		{Title: "Bruschetta", Price: decimal.NewFromFloat(8.00), CategoryID: mains.ID},
		{Title: "Lemon Dessert", Price: decimal.NewFromFloat(5.00), Featured: true, CategoryID: desserts.ID},
		{Title: "Lemonade", Price: decimal.NewFromFloat(3.25), CategoryID: drinks.ID},
	}
	for i := range items {
		if err := db.Where("title = ?", items[i].Title).
			FirstOrCreate(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
