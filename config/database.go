package config

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dataSourceName = "host=%s user=%s password=%s dbname=%s %s"
)

func GetDbWriteOnly(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	return createDbConnection(ctx, cfg.Database.Write, cfg.Database.MaxConnections)
}

func GetDbReadOnly(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	return createDbConnection(ctx, cfg.Database.Read, cfg.Database.MaxConnections)
}

func createDbConnection(ctx context.Context, store DataStore, maxConns int) (*pgxpool.Pool, error) {
	descriptor := fmt.Sprintf(dataSourceName, store.Host, store.Username, store.Password, store.Name, store.Param)
	config, err := pgxpool.ParseConfig(descriptor)
	if err != nil {
		return nil, err
	}
	config.MaxConns = int32(maxConns)
	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
