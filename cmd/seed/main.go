// Package main seeds the database with demo farm data.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goat-farm/backend/config"
	"github.com/goat-farm/backend/internal/domain/entity"
	"github.com/goat-farm/backend/internal/infra/db"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

var breeds = []string{"Kacang", "Etawa", "Jawarandu", "Boer", "Saanen"}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(&model.GoatModel{}, &model.TransactionModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	if err := seed(database.DB()); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding completed successfully")
}

// seed populates the database with an initial capital entry, a demo herd and
// a year of ledger activity.
func seed(gdb *gorm.DB) error {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	// Initial capital, dated one year back
	capitalDate := now.AddDate(-1, 0, 0)
	capital := entity.NewTransaction(
		capitalDate,
		entity.TransactionTypeIncome,
		entity.CategoryInitialCapital,
		"Initial capital for the goat farming operation",
		decimal.NewFromInt(50_000_000),
		"MOD001",
		nil,
		"Starting capital provided by the village cooperative",
	)
	if err := createTransaction(gdb, capital); err != nil {
		return err
	}

	// Herd: 25 active goats plus 5 already sold
	var goats []*entity.Goat
	for i := 0; i < 30; i++ {
		status := entity.GoatStatusHealthy
		switch {
		case i >= 25:
			status = entity.GoatStatusSold
		case rng.Intn(10) == 0:
			status = entity.GoatStatusSick
		}
		goats = append(goats, randomGoat(rng, now, i, status))
	}

	for _, goat := range goats {
		if err := gdb.Create(model.GoatFromEntity(goat)).Error; err != nil {
			return fmt.Errorf("failed to create goat %s: %w", goat.TagNumber, err)
		}
	}

	// Purchase entries for every goat bought with a recorded price
	for i, goat := range goats {
		if goat.PurchasePrice == nil || goat.PurchaseDate == nil {
			continue
		}
		purchase := entity.NewTransaction(
			*goat.PurchaseDate,
			entity.TransactionTypeExpense,
			entity.CategoryPurchaseOfGoat,
			fmt.Sprintf("Purchase of %s goat %s", goat.Breed, goat.TagNumber),
			*goat.PurchasePrice,
			fmt.Sprintf("PB%04d", i+1),
			&goat.ID,
			"",
		)
		if err := createTransaction(gdb, purchase); err != nil {
			return err
		}
	}

	// Sales for the sold goats, at a 20-80% markup over the purchase price
	for i, goat := range goats {
		if goat.Status != entity.GoatStatusSold || goat.PurchasePrice == nil {
			continue
		}
		markup := decimal.NewFromInt(int64(12 + rng.Intn(7))).Div(decimal.NewFromInt(10))
		salePrice := goat.PurchasePrice.Mul(markup).Round(2)
		saleDate := randomDateBetween(rng, *goat.PurchaseDate, now)
		sale := entity.NewTransaction(
			saleDate,
			entity.TransactionTypeIncome,
			entity.CategorySaleOfGoat,
			fmt.Sprintf("Sale of %s goat %s", goat.Breed, goat.TagNumber),
			salePrice,
			fmt.Sprintf("JL%04d", i+1),
			&goat.ID,
			"",
		)
		if err := createTransaction(gdb, sale); err != nil {
			return err
		}
	}

	// Milk sales over the last six months, priced per liter
	for i := 0; i < 20; i++ {
		liters := 8 + rng.Intn(18)
		milkSale := entity.NewTransaction(
			randomDateBetween(rng, now.AddDate(0, -6, 0), now),
			entity.TransactionTypeIncome,
			entity.CategorySaleOfMilk,
			fmt.Sprintf("Sale of %d liters of goat milk", liters),
			decimal.NewFromInt(int64(liters)*15_000),
			fmt.Sprintf("SU%04d", i+1),
			nil,
			"",
		)
		if err := createTransaction(gdb, milkSale); err != nil {
			return err
		}
	}

	// Running costs spread over the last year
	expenses := []struct {
		category     entity.TransactionCategory
		descriptions []string
	}{
		{entity.CategoryPurchaseOfFeed, []string{"Purchase of fresh grass", "Purchase of concentrate feed", "Purchase of rice bran", "Purchase of corn feed"}},
		{entity.CategoryHealthCost, []string{"Vaccination", "Deworming treatment", "Vitamin supplements", "Veterinary consultation"}},
		{entity.CategoryOperationalCost, []string{"Barn electricity", "Barn maintenance", "Transport costs", "Farm labor"}},
	}
	for i := 0; i < 30; i++ {
		group := expenses[rng.Intn(len(expenses))]
		expense := entity.NewTransaction(
			randomDateBetween(rng, capitalDate, now),
			entity.TransactionTypeExpense,
			group.category,
			group.descriptions[rng.Intn(len(group.descriptions))],
			decimal.NewFromInt(int64(50_000+rng.Intn(2_950_000))).Round(2),
			"",
			nil,
			"",
		)
		if err := createTransaction(gdb, expense); err != nil {
			return err
		}
	}

	return nil
}

func randomGoat(rng *rand.Rand, now time.Time, index int, status entity.GoatStatus) *entity.Goat {
	sex := entity.GoatSexFemale
	if rng.Intn(2) == 0 {
		sex = entity.GoatSexMale
	}

	birthDate := randomDateBetween(rng, now.AddDate(-3, 0, 0), now.AddDate(0, -2, 0))
	purchaseDate := randomDateBetween(rng, now.AddDate(-2, 0, 0), now)
	weight := decimal.NewFromFloat(15 + rng.Float64()*65).Round(2)
	purchasePrice := decimal.NewFromInt(int64(1_000_000 + rng.Intn(4_000_000))).Round(2)

	return entity.NewGoat(
		fmt.Sprintf("KMB-%04d", 1000+index),
		breeds[rng.Intn(len(breeds))],
		sex,
		&birthDate,
		&weight,
		status,
		&purchasePrice,
		&purchaseDate,
		"",
	)
}

func randomDateBetween(rng *rand.Rand, from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	delta := to.Unix() - from.Unix()
	return time.Unix(from.Unix()+rng.Int63n(delta), 0).UTC()
}

func createTransaction(gdb *gorm.DB, txn *entity.Transaction) error {
	if err := gdb.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		return fmt.Errorf("failed to create transaction %s: %w", txn.Description, err)
	}
	return nil
}
