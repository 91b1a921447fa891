// Comando migrate: aplica o revierte las migraciones SQL embebidas.
//
//	go run ./cmd/migrate -action up
//	go run ./cmd/migrate -action down -steps 1
//	go run ./cmd/migrate -action version
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-alerts-api/pkg/config"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	action := flag.String("action", "up", "up | down | version")
	steps := flag.Int("steps", 1, "cantidad de migraciones a revertir con -action down")
	flag.Parse()

	_ = godotenv.Load() // opcional: variables desde .env

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch *action {
	case "up":
		err = m.Up()
	case "down":
		if *steps <= 0 {
			log.Fatal().Int("steps", *steps).Msg("-steps debe ser positivo")
		}
		err = m.Steps(-*steps)
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			log.Info().Msg("sin migraciones aplicadas")
			return
		}
		if verr != nil {
			log.Fatal().Err(verr).Msg("leer versión")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión de esquema")
		return
	default:
		log.Fatal().Str("action", *action).Msg("acción desconocida (up | down | version)")
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("action", *action).Msg("migración fallida")
	}
	log.Info().Str("action", *action).Msg("migración completada")
}
