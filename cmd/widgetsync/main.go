// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package main implements the widgetsync service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lifeboard/widgetsync/internal/api"
	"github.com/lifeboard/widgetsync/internal/config"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT,
		os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	// Optional .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("failed to load .env file", logger.Err(err))
	}

	// Read config
	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.New(conf.LogLevel)

	// Initialize the service
	serv, err := service.New(conf, log)
	if err != nil {
		log.Error("failed to initialize widgetsync service", logger.Err(err))
		os.Exit(1)
	}
	server := api.New(conf.Listen.Addr, serv, log)

	log.Info("starting widgetsync service", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date),
		slog.String("listen", conf.Listen.Addr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx)
	}()
	if err = serv.Run(ctx); err != nil {
		log.Error("failed to run widgetsync service", logger.Err(err))
	}
	if err = <-errCh; err != nil {
		log.Error("failed to run widgetsync API server", logger.Err(err))
	}
	log.Info("shutting down widgetsync service")
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "widgetsync", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
