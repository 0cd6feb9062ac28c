package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	LogFile    string // Log file path
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

func DefaultLogConfig(logFile string) LogConfig {
	return LogConfig{
		LogFile:    logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
}

// SetupLogging points the standard logger at a rotating log file. The
// returned closer releases the file and must be called before exit.
func SetupLogging(config LogConfig) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
		return nil, err
	}

	logger := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	log.SetOutput(logger)

	return logger, nil
}

// DisableLogging discards everything written to the standard logger, leaving
// stderr for the single user-facing error line.
func DisableLogging() {
	log.SetOutput(io.Discard)
}
