package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"pocketgrove-server/internal/config"
	"pocketgrove-server/internal/core/rng"
	"pocketgrove-server/internal/engine"
	"pocketgrove-server/internal/infrastructure/storage"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/server"
	"pocketgrove-server/internal/version"
	"pocketgrove-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: окружение, потом флаги поверх.
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 for random)")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory with game data files")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the save database")
	flag.Parse()

	logger.Log.Info("Starting Pocket Grove...")
	logger.Log.Info(version.String())

	var src *rng.Source
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
		logger.Log.Infof("🎲 Using explicit seed: %d", cfg.Seed)
	} else {
		src = rng.NewRandom()
		logger.Log.Info("🎲 Using random seed")
	}

	// 2. Справочные данные и хранилище сохранений.
	reg, err := registry.LoadDir(cfg.DataDir)
	if err != nil {
		logger.Log.Fatal("Game data error:", err)
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Log.Fatal("Storage error:", err)
	}
	defer store.Close()

	// 3. Ядро и сервер.
	gameService := engine.NewService(reg, store, src)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}
