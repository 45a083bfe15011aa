package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tam-survey/internal/config"
	"tam-survey/internal/database"
	"tam-survey/internal/logger"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: migrate [-dir path] up | down [--all] | version\n")
	os.Exit(2)
}

func main() {
	dir := flag.String("dir", "database/migrations", "migrations directory")
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LoggerConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	m, err := database.NewMigrator(*dir, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down(len(args) > 1 && args[1] == "--all")
	case "version":
		var v uint
		var ok bool
		v, ok, err = m.Version()
		if err == nil {
			fmt.Printf("version=%d applied=%t\n", v, ok)
		}
	default:
		usage()
	}
	if err != nil {
		l.Fatal("Migration failed", zap.String("command", args[0]), zap.Error(err))
	}
}
