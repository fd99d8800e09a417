package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"rest-core/internal/config"
	"rest-core/internal/events"
	"rest-core/internal/logging"
	"rest-core/internal/model"
	"rest-core/internal/store"
)

func main() {
	ctx := context.Background()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"port":   cfg.Server.Port,
		"driver": cfg.Database.Driver,
		"db":     cfg.Database.Name,
	}).Info("Config loaded")

	// 2. Connect to database
	db, err := store.New(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 3. Bootstrap resource tables
	if err := db.Bootstrap(ctx); err != nil {
		logrus.Fatalf("Failed to bootstrap schema: %v", err)
	}

	// 4. Compile write rules
	rules, err := model.NewRuleSet(cfg.Rules)
	if err != nil {
		logrus.Fatalf("Failed to compile rules: %v", err)
	}
	mm := model.NewModelManager(db, cfg.List, rules)

	// 5. Change events
	var pub *events.Publisher
	if cfg.Events.Enabled {
		writer := events.NewKafkaWriter(cfg.Events)
		defer writer.Close()
		pub = events.NewPublisher(writer)
		logrus.WithField("topic", cfg.Events.Topic).Info("Change events enabled")
	}

	// 6. Serve
	app := newApp(cfg, mm, pub)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.WithError(err).Error("Shutdown failed")
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("Starting server on %s", addr)
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Error("Server stopped")
	}
}
