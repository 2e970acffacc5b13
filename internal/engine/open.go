package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"go.mydb/internal/config"
	"go.mydb/internal/logger"
)

// Open opens the database file at path, logging to <log_dir>/mydb.log.
func Open(path string, cfg *config.Config) (*Database, error) {
	logPath := filepath.Join(cfg.LogDir, "mydb.log")

	logFile, lErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if lErr != nil {
		return nil, fmt.Errorf("failed to open log file: %w", lErr)
	}

	log := logger.New(logFile, logger.ParseLevel(cfg.LogLevel)).With("db", filepath.Base(path))

	db, err := OpenWithLogger(path, uint32(cfg.MaxPages), log)
	if err != nil {
		log.Errorf("Open %s: %v", path, err)
		_ = log.Sync()
		logFile.Close()
		return nil, err
	}

	db.logFile = logFile
	return db, nil
}
