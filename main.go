package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"ShowroomDB/cli"
	"ShowroomDB/config"
	"ShowroomDB/registry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (default: configs/showroom.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ix, err := registry.NewIndex[string]("repl", cfg.Index, logger)
	if err != nil {
		logger.Fatal("create index", zap.Error(err))
	}
	defer ix.Close()

	scanner := bufio.NewScanner(os.Stdin)
	cli.NewCli(scanner, os.Stdout, ix).Start()
}
