package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hrasity/pcd/internal/configuration"
	"github.com/hrasity/pcd/internal/device"
	"github.com/hrasity/pcd/internal/host"
	"github.com/hrasity/pcd/internal/lifecycle"
	"github.com/hrasity/pcd/internal/storage"
	"github.com/hrasity/pcd/internal/ui"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "pcd.env", "path to the configuration file")
	uiEnabled  = flag.Bool("ui", false, "launch the interactive device console")
	selfTest   = flag.Bool("selftest", false, "run the device self-test and exit")
)

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Parse()
	setupLogging(os.Stdout, slog.LevelInfo)

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	config, err := configHandler.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load the configuration.", "err", err)
		ExitCode = 1

		return
	}
	setupLogging(os.Stdout, config.LogLevel)

	buf, err := storage.New(config.Capacity)
	if err != nil {
		slog.Error("Failed to allocate the device arena.", "err", err)
		ExitCode = 1

		return
	}

	devHandler := device.NewHandler(config.DeviceName, buf)
	hostEnv := host.New()

	registrar := lifecycle.NewRegistrar(config.DeviceName, devHandler, hostEnv, hostEnv, hostEnv)
	if err := registrar.Load(); err != nil {
		slog.Error("Failed to load the device driver.", "err", err)
		ExitCode = 1

		return
	}
	defer registrar.Unload()

	file, err := hostEnv.Open(registrar.NodePath())
	if err != nil {
		slog.Error("Failed to open the device node.", "err", err)
		ExitCode = 1

		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close the device node.", "err", err)
		}
	}()

	switch {
	case *selfTest:
		if err := runSelfTest(file, devHandler.Capacity()); err != nil {
			slog.Error("Device self-test failed.", "err", err)
			ExitCode = 1

			return
		}
		slog.Info("Device self-test passed.")

	case *uiEnabled:
		if err := runConsole(file, devHandler, registrar, config.LogLevel); err != nil {
			slog.Error("Device console failed.", "err", err)
			ExitCode = 1

			return
		}

	default:
		if err := exercise(file); err != nil {
			slog.Error("Device exercise failed.", "err", err)
			ExitCode = 1

			return
		}
	}
}

// exercise drives one write / seek / read round through the open device
// node and logs the outcome. This is the default action when neither the
// console nor the self-test is requested.
func exercise(file *host.OpenFile) error {
	payload := []byte("hello from user space")

	n, err := file.Write(payload)
	if err != nil {
		return err
	}
	slog.Info("Wrote to the device.",
		"node", file.Path(), "bytes", humanize.Bytes(uint64(n)), "pos", file.Pos()) //nolint:gosec

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	readBack := make([]byte, n)
	if _, err := io.ReadFull(file, readBack); err != nil {
		return err
	}
	slog.Info("Read back from the device.",
		"node", file.Path(), "data", string(readBack), "pos", file.Pos())

	return nil
}

// runConsole hands the default logger to the console's log bridge for
// the duration of the interactive session and restores it afterwards.
func runConsole(file *host.OpenFile, devHandler *device.Handler,
	registrar *lifecycle.Registrar, level slog.Level,
) error {
	uiHandler := ui.NewHandler(file, ui.DeviceInfo{
		Name:     devHandler.Name(),
		Path:     registrar.NodePath(),
		Number:   registrar.Number().String(),
		Capacity: devHandler.Capacity(),
	})

	defer setupLogging(os.Stdout, level)
	setupLogging(uiHandler.LogWriter, level)

	return uiHandler.Launch()
}
