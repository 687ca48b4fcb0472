// Aplica las migraciones SQL de internal/infrastructure/postgres/migrations.
//
// Uso:
//
//	go run ./cmd/migrate            # up (todas las pendientes)
//	go run ./cmd/migrate -down      # revierte TODAS las migraciones
//	go run ./cmd/migrate -steps -1  # revierte la última
package main

import (
	"errors"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/jhoicas/fieldforce-api/pkg/config"
	"github.com/jhoicas/fieldforce-api/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revertir todas las migraciones")
	steps := flag.Int("steps", 0, "aplicar n migraciones (negativo = revertir)")
	path := flag.String("path", "internal/infrastructure/postgres/migrations", "directorio de migraciones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("migrate")

	m, err := migrate.New("file://"+*path, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch {
	case *down:
		err = m.Down()
	case *steps != 0:
		err = m.Steps(*steps)
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("sin cambios: el esquema ya está al día")
		return
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal().Err(err).Msg("consultar versión")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
}
