// Package configuration reads the device settings from Unix-type
// environment files through a pluggable provider.
package configuration

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hrasity/pcd/internal/storage"
)

// Configuration keys recognized in the environment files.
const (
	KeyDeviceName = "PCD_DEVICE_NAME"
	KeyCapacity   = "PCD_CAPACITY"
	KeyLogLevel   = "PCD_LOG_LEVEL"
)

// DefaultDeviceName is the node name used when none is configured.
const DefaultDeviceName = "pcd"

// envProvider abstracts the underlying configuration file reader.
type envProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Config holds the validated device settings.
type Config struct {
	DeviceName string
	Capacity   int
	LogLevel   slog.Level
}

// Handler is the principal implementation of a configuration [Handler].
type Handler struct {
	provider envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(provider envProvider) *Handler {
	return &Handler{provider: provider}
}

// Load reads the given environment files and returns the validated
// settings. Missing files are not an error: defaults apply.
func (h *Handler) Load(filenames ...string) (*Config, error) {
	config := &Config{
		DeviceName: DefaultDeviceName,
		Capacity:   storage.DefaultCapacity,
		LogLevel:   slog.LevelInfo,
	}

	envMap, err := h.provider.Read(filenames...)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("(config) %w", err)
	}

	if name, ok := envMap[KeyDeviceName]; ok && name != "" {
		config.DeviceName = name
	}

	if raw, ok := envMap[KeyCapacity]; ok {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity <= 0 {
			return nil, fmt.Errorf("(config) %w: %q", ErrInvalidCapacity, raw)
		}
		config.Capacity = capacity
	}

	if raw, ok := envMap[KeyLogLevel]; ok {
		level, err := parseLevel(raw)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}

	return config, nil
}

// parseLevel maps a configured level name onto a [slog.Level].
func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("(config) %w: %q", ErrInvalidLogLevel, raw)
	}
}
