package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	v1 "github.com/anbelova/mathblitz/api/v1"
	"github.com/anbelova/mathblitz/internal/problems"
	"github.com/anbelova/mathblitz/internal/progress"
	"github.com/anbelova/mathblitz/internal/user"
	"github.com/anbelova/mathblitz/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("file .env not found, using system values")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	// safe to run against an existing store
	err = database.AutoMigrate(
		&user.User{},
		&progress.Profile{},
		&progress.Result{},
		&progress.Achievement{},
	)
	if err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	userService := user.NewService(user.NewGormRepository(database))
	progressService := progress.NewService(progress.NewGormRepository(database))
	generator := problems.NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = v1.HTTPErrorHandler

	v1.RegisterUserRoutes(e, userService)
	v1.RegisterProgressRoutes(e, progressService)
	v1.RegisterProblemRoutes(e, generator)

	e.Static("/", "frontend")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
