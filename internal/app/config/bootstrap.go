package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Bootstrap struct {
	Router         *chi.Mux
	MySQL          *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	sqlDB, err := b.MySQL.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing MySQL")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
