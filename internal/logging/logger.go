// Package logging builds the zap loggers used by the gateway and the chat front-end.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gemino/internal/config"
)

// Config describes one process's logger.
type Config struct {
	Level   string // "debug", "info", "warn", "error"
	Console bool   // human-readable output instead of JSON
	File    string // empty writes to stdout
	Process string
	Env     string
}

// ForServer logs JSON to stdout unless LOG_DEV asks for console output.
func ForServer(cfg *config.ServerConfig) Config {
	return Config{
		Level:   cfg.LogLevel,
		Console: cfg.LogDev,
		Process: "gateway",
		Env:     cfg.Env,
	}
}

// ForChat logs JSON to the chat log file; the terminal belongs to the UI.
func ForChat(cfg *config.ChatConfig) Config {
	return Config{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Process: "chat",
	}
}

func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := "stdout"
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		output = cfg.File
	}

	fields := map[string]interface{}{}
	if cfg.Process != "" {
		fields["process"] = cfg.Process
	}
	if cfg.Env != "" {
		fields["env"] = cfg.Env
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Console,
		Encoding:          "json",
		EncoderConfig:     jsonEncoder(),
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Console,
		InitialFields:     fields,
	}
	if cfg.Console {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = consoleEncoder(cfg.File == "")
	}
	return zapCfg.Build()
}

// Must is New for process start-up, where a broken logger leaves nothing to report to.
func Must(cfg Config) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

func jsonEncoder() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// consoleEncoder colours levels only when writing to a terminal stream.
func consoleEncoder(color bool) zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}
