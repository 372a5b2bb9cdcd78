package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/task-management/internal/config"
	"github.com/adanyl0v/task-management/internal/storage"
)

var globalPostgresPool *pgxpool.Pool

// MustConnectPostgres connects to the task store. A missing connection
// string is not fatal: the pool stays nil and task requests fail with
// a configuration error.
func MustConnectPostgres() {
	cfg := config.Global().Postgres
	connString := cfg.ConnString()
	if connString == "" {
		globalLogger.Warn().Msg("postgres connection is not configured")
		return
	}

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	globalLogger.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Uint16("port", poolCfg.ConnConfig.Port).
		Msg("connected to postgres")

	if !cfg.SkipMigrate {
		err = storage.Migrate(context.Background(), globalPostgresPool)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to migrate postgres")
			panic(err)
		}
		globalLogger.Info().Msg("migrated postgres")
	}
}

func DisconnectPostgres() {
	if globalPostgresPool == nil {
		return
	}
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
