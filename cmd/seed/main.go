// Command seed loads the sample catalog and an admin account into an
// empty database. Safe to re-run: it skips seeding when products exist.
package main

import (
	"os"

	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	db := database.GetDB()

	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count > 0 {
		log.Info("Products already present, skipping seed", zap.Int64("count", count))
		return
	}

	products := []model.Product{
		{
			Name:        "ベーシックTシャツ",
			Description: "柔らかな肌触りの上質なコットンを使用したベーシックなTシャツです。",
			Price:       3900,
			Stock:       50,
			Category:    "Tシャツ",
			IsNew:       true,
			ImageURL:    "/uploads/placeholder.png",
		},
		{
			Name:        "プレミアムパーカー",
			Description: "上質な素材を使用した、着心地の良いパーカーです。",
			Price:       7900,
			Stock:       30,
			Category:    "パーカー",
			IsFeatured:  true,
			ImageURL:    "/uploads/placeholder.png",
		},
		{
			Name:        "グラフィックTシャツ",
			Description: "オリジナルのグラフィックデザインがプリントされたTシャツです。",
			Price:       4900,
			Stock:       40,
			Category:    "Tシャツ",
			ImageURL:    "/uploads/placeholder.png",
		},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products", zap.Error(err))
	}
	log.Info("Sample catalog created", zap.Int("products", len(products)))

	adminEmail := envOr("ADMIN_EMAIL", "admin@example.com")
	adminPassword := envOr("ADMIN_PASSWORD", "admin1234")

	var existing int64
	db.Model(&model.User{}).Where("email = ?", adminEmail).Count(&existing)
	if existing > 0 {
		log.Info("Admin account already exists", zap.String("email", adminEmail))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		log.Fatal("Failed to hash admin password", zap.Error(err))
	}
	admin := model.User{
		Email:    adminEmail,
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account", zap.Error(err))
	}
	log.Info("Admin account created", zap.String("email", adminEmail))
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
