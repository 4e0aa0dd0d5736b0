package main

import (
	"log"

	"github.com/JordiPons-11/chessrank/config"
	_ "github.com/JordiPons-11/chessrank/docs"
	"github.com/JordiPons-11/chessrank/internal/auth"
	"github.com/JordiPons-11/chessrank/internal/player"
	"github.com/JordiPons-11/chessrank/internal/point"
	"github.com/JordiPons-11/chessrank/internal/tournament"
	"github.com/JordiPons-11/chessrank/routes"
)

// @title ChessRank REST API
// @version 1.0
// @description Chess tournament results: players, tournaments, point entries, rankings and exports.
// @host localhost:8088
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&auth.User{},
		&player.Player{}, &tournament.Tournament{}, &point.Point{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := auth.SeedUsers(db, cfg.Auth.SeedFile); err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
