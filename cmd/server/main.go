package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"kings-crust-service/internal/adapters/cache"
	"kings-crust-service/internal/adapters/repositories"
	"kings-crust-service/internal/api"
	"kings-crust-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (postgres, redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	branchSeedPath := getEnv("BRANCH_SEED_PATH", "data/seeds/branches.json")
	menuSeedPath := getEnv("MENU_SEED_PATH", "data/seeds/menu.json")
	port := getEnv("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed the branch and menu catalogs on startup for local runs.
	if err := initAndSeed(database, branchSeedPath, menuSeedPath); err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer redisClient.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("verify redis connection to %q: %v", redisAddr, err)
		}
	}

	router := api.NewRouter(api.Deps{
		Branches:  repositories.NewPostgresBranchRepository(database),
		Menu:      repositories.NewPostgresMenuRepository(database),
		Addresses: repositories.NewPostgresAddressRepository(database),
		Orders:    repositories.NewPostgresOrderRepository(database),
		Carts:     cache.NewRedisCartStore(redisClient),
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func initAndSeed(database *sql.DB, branchSeedPath, menuSeedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return err
	}

	if err := repositories.SeedBranchesFromJSON(database, branchSeedPath); err != nil {
		return err
	}

	return repositories.SeedMenuFromJSON(database, menuSeedPath)
}
