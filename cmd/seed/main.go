package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"cryptodash/internal/database"
	"cryptodash/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type seedHolding struct {
	assetID, symbol, name string
	quantity, purchase    string
	lastPrice             string
	purchased             string
}

func (h seedHolding) purchaseDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", h.purchased)
	if err != nil {
		return time.Time{}, fmt.Errorf("purchase date for %s: %w", h.symbol, err)
	}
	return t, nil
}

var demoHoldings = []seedHolding{
	{"bitcoin", "BTC", "Bitcoin", "0.5", "35000", "43250", "2024-01-01"},
	{"ethereum", "ETH", "Ethereum", "2.3", "2200", "2650", "2024-01-05"},
	{"cardano", "ADA", "Cardano", "1000", "0.45", "0.52", "2024-01-10"},
	{"solana", "SOL", "Solana", "15", "85", "98", "2024-01-15"},
}

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()
	dbURL := os.Getenv("POSTGRES_URL")
	if dbURL == "" {
		log.Fatal("POSTGRES_URL is required")
	}
	userID := "demo-user"
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := database.New(db, logrus.New())

	if err := repo.EnsureUserExists(ctx, userID, "John Doe", "john.doe@example.com"); err != nil {
		log.Fatalf("create user: %v", err)
	}
	if err := repo.SaveNotificationSettings(ctx, userID, models.DefaultNotificationSettings()); err != nil {
		log.Fatalf("save notifications: %v", err)
	}

	existing, err := repo.GetHoldings(ctx, userID)
	if err != nil {
		log.Fatalf("load holdings: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("%s already has %d holdings, leaving them alone\n", userID, len(existing))
		return
	}

	// prices are stamped an hour back so the server refetches them on first read
	seenAt := time.Now().UTC().Add(-time.Hour)
	for _, h := range demoHoldings {
		purchased, err := h.purchaseDate()
		if err != nil {
			log.Fatal(err)
		}
		id, err := repo.CreateHolding(ctx, database.NewHolding{
			UserID:        userID,
			AssetID:       h.assetID,
			Symbol:        h.symbol,
			Name:          h.name,
			Quantity:      decimal.RequireFromString(h.quantity),
			PurchasePrice: decimal.RequireFromString(h.purchase),
			PurchaseDate:  purchased,
		})
		if err != nil {
			log.Fatalf("create holding %s: %v", h.symbol, err)
		}
		if err := repo.UpsertPrice(ctx, h.assetID, decimal.RequireFromString(h.lastPrice), seenAt); err != nil {
			fmt.Printf("Warning: could not insert price for %s: %v\n", h.symbol, err)
		}
		fmt.Printf("seeded %s %s as %s\n", h.quantity, h.symbol, id)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Now open: http://localhost:%s/portfolio/%s\n", port, userID)
}
