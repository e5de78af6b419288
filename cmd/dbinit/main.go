package main

import (
	"context"
	"flag"
	"log"

	"hmps-api/internal/config"
	"hmps-api/internal/logger"
	"hmps-api/internal/service"
	"hmps-api/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file")
	seed := flag.Bool("seed", true, "create the admin account from ADMIN_* settings")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(config.LogConfig{Level: cfg.Log.Level, Console: true})

	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed:", err)
	}
	st := store.New(db, cfg.Database.QueryTimeout)
	defer st.Close()

	// Step 1: schema
	sqlDB, err := st.SQLDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Migrate(sqlDB); err != nil {
		log.Fatal("migrate failed:", err)
	}
	logger.Info("migrations applied", "db", cfg.Database.Name)

	// Step 2: bootstrap admin
	if *seed {
		if err := service.NewAuthService(st).Bootstrap(context.Background(), cfg.Admin); err != nil {
			log.Fatal(err)
		}
	}

	logger.Info("=== all done ===")
}
