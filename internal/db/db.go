package db

import (
	"log"
	"os"
	"wandermap/internal/models"
	"wandermap/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=wandermap port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Favorite{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed demo pins for the explore map
	seedSamplePosts()
}

// seedSamplePosts creates a demo account with a handful of pinned
// locations so the home and explore pages are not empty on first run.
func seedSamplePosts() {
	var count int64
	DB.Model(&models.Post{}).Count(&count)
	if count > 0 {
		log.Println("Posts already present, skipping sample seed")
		return
	}

	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedPassword == "" {
		seedPassword = "wandermap"
	}
	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		log.Printf("Failed to hash seed password: %v", err)
		return
	}
	demo := models.User{
		DisplayName: "Wandermap",
		Username:    "wandermap",
		Password:    hash,
		Caption:     "Places worth the detour.",
		Area:        "Los Angeles, CA",
	}
	if err := DB.Where(models.User{Username: demo.Username}).FirstOrCreate(&demo).Error; err != nil {
		log.Printf("Failed to create demo user: %v", err)
		return
	}

	posts := []models.Post{
		{UserID: demo.ID, Title: "Sunset over the harbor", Lat: 33.9446, Lng: -118.1661, PlaceName: "Long Beach"},
		{UserID: demo.ID, Title: "Quiet cliffside trail", Lat: 32.9446, Lng: -118.0, PlaceName: "Crystal Cove"},
		{UserID: demo.ID, Title: "Best tacos on the coast", Lat: 33.0, Lng: -117.1661, PlaceName: "Encinitas"},
		{UserID: demo.ID, Title: "Hidden observatory lawn", Lat: 34.0730, Lng: -118.1091, PlaceName: "Griffith Park"},
	}
	for _, post := range posts {
		if err := DB.Create(&post).Error; err != nil {
			log.Printf("Failed to create sample post %s: %v", post.Title, err)
		}
	}
	log.Println("Sample posts created successfully")
}
