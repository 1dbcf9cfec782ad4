// Comando migrate aplica las migraciones embebidas de PostgreSQL con goose.
//
//	go run ./cmd/migrate -cmd up
//	go run ./cmd/migrate -cmd down
//	go run ./cmd/migrate -cmd status
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "comando goose: up|down|status|version|redo|reset|up-to|down-to")
	timeout := flag.Duration("timeout", 2*time.Minute, "tiempo máximo de la operación")
	flag.Parse()

	// migrate solo necesita la conexión; el driver configurado no importa
	os.Setenv("STORE_DRIVER", config.DriverPostgres)
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	db, err := postgres.OpenDB(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := postgres.RunMigrations(ctx, db, *cmd, flag.Args()...); err != nil {
		log.Error().Err(err).Str("cmd", *cmd).Msg("migración fallida")
		cancel()
		os.Exit(1)
	}
	log.Info().Str("cmd", *cmd).Msg("migración completada")
}
