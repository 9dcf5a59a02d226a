// Aplica as migrações do schema com goose.
//
// Uso: migrate [up|down|status]  (padrão: up)
package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/odisseia/erp-api/migrations"
	"github.com/odisseia/erp-api/pkg/config"
	"github.com/odisseia/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexão ao PostgreSQL")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("configurar dialect do goose")
	}

	log.Info().Str("command", command).Msg("executando migração")

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		log.Fatal().Str("command", command).Msg("comando desconhecido (use up, down ou status)")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("migração falhou")
	}

	log.Info().Msg("migração concluída")
}
