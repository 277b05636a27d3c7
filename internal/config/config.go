package config

import (
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string // empty selects the in-memory store
	LogFile string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// DB_DSN left empty keeps everything in memory; set a sqlite path
	// (or ":memory:") to run on the sql-backed store instead.
	dsn := os.Getenv("DB_DSN")
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
