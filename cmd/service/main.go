package main

import (
	"context"
	"os"
	"store-service/config"
	"store-service/internal/database"
	"store-service/internal/logger"
	"store-service/internal/producer"
	"store-service/internal/repository"
	"store-service/internal/router"
	"store-service/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	log.Info("cfg: ", zap.Any("config", cfg))
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	opts := service.Options{StrictStock: cfg.StrictStock}
	var orderProducer *producer.OrderProducer
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic != "" {
		orderProducer = producer.NewOrderProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer orderProducer.Close()
		opts.Events = orderProducer
		log.Info("Kafka producer включён", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	store := service.NewStore(repos, log, opts)
	defer store.Close()

	if err := store.RefreshAll(context.Background()); err != nil {
		log.Fatal("Не удалось загрузить снимки таблиц", zap.Error(err))
	}

	r := router.Router(store, log)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to run http server", zap.Error(err))
	}
}
