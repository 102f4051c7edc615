// Package ui implements an interactive device console using [tea].
package ui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Handler is the principal implementation of a device console [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new device console [Handler] driving
// the given open device handle.
func NewHandler(file deviceFile, info DeviceInfo) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, file, info)
	handler.program = tea.NewProgram(model, tea.WithAltScreen())
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the device console (the [tea.Program]) and blocks until
// it exits.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
