package configs

import (
	"context"
	"fmt"
	"log"

	"fooddelivery/entity"
	"fooddelivery/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store is an opened backend plus the repositories built on it.
type Store struct {
	Repos *repository.Repositories
	close func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore connects to the backend named by cfg.DBDriver.
func OpenStore(ctx context.Context, cfg *Config) (*Store, error) {
	switch cfg.DBDriver {
	case "mongo":
		return openMongo(ctx, cfg)
	case "sqlite":
		return openSQLite(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func openMongo(ctx context.Context, cfg *Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Printf("connected to mongo database %s", cfg.MongoDatabase)

	return &Store{
		Repos: repository.NewMongoRepositories(db),
		close: client.Disconnect,
	}, nil
}

func openSQLite(source string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := SetupDatabase(db); err != nil {
		return nil, err
	}
	log.Printf("connected to sqlite database %s", source)

	return &Store{
		Repos: repository.NewGormRepositories(db),
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}

// SetupDatabase migrates the schema for the gorm backend.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Vendor{}, &entity.Food{},
		&entity.Customer{},
		&entity.Order{}, &entity.Transaction{},
		&entity.DeliveryUser{},
		&entity.Offer{},
	)
}
