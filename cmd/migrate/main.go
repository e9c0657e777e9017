package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/pressly/goose/v3"

	"remoteready/config"
	"remoteready/internal/pkg/database"
	"remoteready/internal/pkg/logger"
	"remoteready/migrations"
)

// Uso: migrate [-dir ./migrations] [up|down|status|redo|version] [args...]
func main() {
	config.LoadDotEnv()

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "", "diretório com os arquivos de migração (padrão: migrações embutidas)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: configuração inválida: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.PoolConfig{MaxOpenConns: 2}, logger.NewLogger(cfg.LogLevel))
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	var source fs.FS = migrations.FS
	dir := "."
	if migrationsDir != "" {
		source = os.DirFS(migrationsDir)
	}
	goose.SetBaseFS(source)

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db.DB, dir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
