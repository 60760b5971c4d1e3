package main

import (
	"log"
	"os"
	"strings"

	"kings-crust-service/internal/adapters/repositories"
	"kings-crust-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	branchSeedPath := getEnv("BRANCH_SEED_PATH", "data/seeds/branches.json")
	menuSeedPath := getEnv("MENU_SEED_PATH", "data/seeds/menu.json")

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding branches...")
	if err := repositories.SeedBranchesFromJSON(database, branchSeedPath); err != nil {
		log.Fatalf("branch seeding failed: %v", err)
	}

	log.Println("Seeding menu...")
	if err := repositories.SeedMenuFromJSON(database, menuSeedPath); err != nil {
		log.Fatalf("menu seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
