package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonConsole/cmd/consolectl/commands"
	"github.com/m04kA/SMC-SalonConsole/internal/config"
	"github.com/m04kA/SMC-SalonConsole/internal/infra/cache/staffcache"
	staffRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonConsole/pkg/logger"
)

var configPath string

func main() {
	app := &commands.AppContext{
		Out:    os.Stdout,
		Logger: logger.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:          "consolectl",
		Short:        "Salon console tools",
		Long:         `Resolves date filter periods and checks staff compatibility for group bookings.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Path to config.toml")

	// Подключение к БД создается только для команд, которым нужен состав сотрудников
	app.OpenRoster = func() (commands.RosterSource, func() error, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}

		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		return staffRepo.NewRepository(dbmetrics.Wrap(db, nil)), db.Close, nil
	}

	app.OpenRosterCache = func() (commands.RosterCache, func() error, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Redis.Enabled {
			return nil, nil, fmt.Errorf("redis cache is disabled in %s", configPath)
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// Для удаления записи источник состава не нужен
		cache := staffcache.New(rdb, nil, cfg.Redis.TTL(), cfg.Redis.Prefix, nil, app.Logger)
		return cache, rdb.Close, nil
	}

	rootCmd.AddCommand(commands.RangeCmd(app))
	rootCmd.AddCommand(commands.StaffCmd(app))
	rootCmd.AddCommand(commands.InvalidateRosterCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
