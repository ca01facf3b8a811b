package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/security"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.App.IsProd() {
		fmt.Fprintln(os.Stderr, "refusing to seed a production database")
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	conn := dbClient.DB().WithContext(ctx)

	if err := seedItems(conn); err != nil {
		requireResource(ctx, logg, "items", err)
	}
	if err := seedMenu(conn); err != nil {
		requireResource(ctx, logg, "menu", err)
	}
	if err := seedPackages(conn); err != nil {
		requireResource(ctx, logg, "packages", err)
	}
	if err := seedFAQs(conn); err != nil {
		requireResource(ctx, logg, "faqs", err)
	}
	if err := seedAdmin(conn, cfg); err != nil {
		requireResource(ctx, logg, "admin user", err)
	}

	logg.Info(ctx, "seed complete")
}

func seedItems(conn *gorm.DB) error {
	weeklyBounce := decimal.NewFromInt(999)
	items := []models.Item{
		{
			Name:         "Princess Castle Bounce House",
			Slug:         "princess-castle-bounce-house",
			Category:     "bounce-houses",
			PricePerDay:  decimal.NewFromInt(299),
			PricePerWeek: &weeklyBounce,
			Images: types.ImageList{
				{URL: "https://cdn.mondragonpartyrental.com/items/princess-castle-1.jpg", Alt: "Princess castle bounce house"},
			},
			Stock:         2,
			Tags:          []string{"kids", "inflatable", "popular"},
			RequiresSetup: true,
			Description:   "15x15 castle bouncer with mesh sides, rated for up to 8 kids.",
		},
		{
			Name:        "White Folding Chair",
			Slug:        "white-folding-chair",
			Category:    "seating",
			PricePerDay: decimal.NewFromInt(2),
			Stock:       400,
			Tags:        []string{"seating", "wedding"},
			Description: "Resin folding chair, indoor or outdoor use.",
		},
		{
			Name:        "60in Round Table",
			Slug:        "60in-round-table",
			Category:    "tables",
			PricePerDay: decimal.NewFromInt(12),
			Stock:       60,
			Tags:        []string{"tables"},
			Description: "Seats 8 to 10 guests. Plywood top with folding legs.",
		},
		{
			Name:        "Patio Heater",
			Slug:        "patio-heater",
			Category:    "climate",
			PricePerDay: decimal.NewFromInt(59),
			Stock:       12,
			Tags:        []string{"outdoor", "winter"},
			Description: "Propane patio heater, tank included.",
		},
	}
	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&items).Error
}

func seedMenu(conn *gorm.DB) error {
	rows := []models.MenuItem{
		{
			Name:           "Street Taco Bar",
			Cuisine:        "mexican",
			PricePerPerson: decimal.NewFromInt(18),
			Allergens:      []string{"gluten", "dairy"},
			Description:    "Carne asada, pollo, and al pastor with fresh tortillas and salsas.",
		},
		{
			Name:           "BBQ Plate",
			Cuisine:        "american",
			PricePerPerson: decimal.NewFromInt(22),
			Allergens:      []string{"gluten"},
			Description:    "Brisket and pulled pork with two sides.",
		},
	}
	return conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func seedPackages(conn *gorm.DB) error {
	var bounce, chairs, tables models.Item
	if err := conn.Where("slug = ?", "princess-castle-bounce-house").First(&bounce).Error; err != nil {
		return err
	}
	if err := conn.Where("slug = ?", "white-folding-chair").First(&chairs).Error; err != nil {
		return err
	}
	if err := conn.Where("slug = ?", "60in-round-table").First(&tables).Error; err != nil {
		return err
	}

	rows := []models.Package{
		{
			Name: "Backyard Birthday Package",
			Slug: "backyard-birthday-package",
			IncludedItems: types.LineItemList{
				{ItemID: bounce.ID, Qty: 1},
				{ItemID: tables.ID, Qty: 4},
				{ItemID: chairs.ID, Qty: 32},
			},
			BasePrice: decimal.NewFromInt(399),
			Upsells: types.UpsellList{
				{Label: "Generator", Price: decimal.NewFromInt(75)},
				{Label: "Cotton candy machine", Price: decimal.NewFromInt(65)},
			},
			Description: "Everything for a 30-guest backyard birthday, delivered and set up.",
		},
	}
	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func seedFAQs(conn *gorm.DB) error {
	rows := []models.FAQ{
		{
			Question: "Do you deliver?",
			Answer:   "Yes, delivery and pickup are included within 25 miles. A fee applies beyond that.",
			Sort:     1,
			IsActive: true,
		},
		{
			Question: "What happens if it rains?",
			Answer:   "You can reschedule or cancel inflatable rentals free of charge up to 24 hours before the event.",
			Sort:     2,
			IsActive: true,
		},
	}
	return conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func seedAdmin(conn *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	hash, err := security.HashPassword(cfg.Seed.AdminPassword, cfg.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		Role:         enums.RoleAdmin,
	}
	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user).Error
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
