package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Deondre2002/Market/internal/config"
	"github.com/Deondre2002/Market/internal/db"
	"github.com/Deondre2002/Market/internal/hash"
	"github.com/Deondre2002/Market/internal/models"
)

// Seeds a demo dataset: one user, ten products, one order holding
// every product at quantity 2.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	gormDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	for _, table := range []string{"order_products", "orders", "products", "users"} {
		if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clear %s: %v", table, err)
		}
	}

	pwHash, err := hash.HashPassword("password123")
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}
	user := models.User{Username: "alice", PasswordHash: pwHash}
	if err := gormDB.Create(&user).Error; err != nil {
		log.Fatalf("seed user: %v", err)
	}

	var products []models.Product
	for i := 1; i <= 10; i++ {
		p := models.Product{
			Name:        fmt.Sprintf("Product %d", i),
			Description: fmt.Sprintf("Description for product %d", i),
			Price:       float64(10 * i),
		}
		if err := gormDB.Create(&p).Error; err != nil {
			log.Fatalf("seed product: %v", err)
		}
		products = append(products, p)
	}

	order := models.Order{
		Date:   time.Now().UTC().Format("2006-01-02"),
		Note:   "first order",
		UserID: user.ID,
	}
	if err := gormDB.Create(&order).Error; err != nil {
		log.Fatalf("seed order: %v", err)
	}

	for _, p := range products {
		item := models.OrderProduct{OrderID: order.ID, ProductID: p.ID, Quantity: 2}
		if err := gormDB.Create(&item).Error; err != nil {
			log.Fatalf("seed line item: %v", err)
		}
	}

	log.Printf("seeded %d products, order %d for user %q", len(products), order.ID, user.Username)
}
