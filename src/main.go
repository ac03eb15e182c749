package main

import (
	"log"

	"github.com/Jaeki-Lee/mini-cloud/logger"
	"github.com/Jaeki-Lee/mini-cloud/src/config"
	"github.com/Jaeki-Lee/mini-cloud/src/server"
)

// @title MiniCloud Backend API
// @version 1.0
// @description Educational dashboard backend proxying OpenStack Keystone/Nova/Neutron/Glance

// @BasePath /api

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg.LogLevel)

	srv := server.NewServer(cfg, appLog)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
