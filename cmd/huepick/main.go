package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/huepick"
	"go.uber.org/zap"
)

// App runs an interactive session and exports its history.
type App struct {
	Picker  huepick.Picker
	Store   huepick.SwatchStore
	Logger  *zap.Logger
	Initial huepick.Color

	// ExportPath receives the session history as JSON Lines at exit.
	// Empty disables the export.
	ExportPath string
}

// Run starts the picker from the initial color. The history is exported
// even when the picker fails, so saved colors survive an interrupt.
func (a *App) Run(ctx context.Context) error {
	final, err := a.Picker.Pick(ctx, huepick.NewState(a.Initial))
	if exportErr := a.export(final.History); exportErr != nil {
		return errors.Join(err, exportErr)
	}
	return err
}

func (a *App) export(history huepick.History) error {
	if a.ExportPath == "" {
		return nil
	}
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if history.Len() == 0 {
		logger.Info("history empty, nothing exported", zap.String("path", a.ExportPath))
		return nil
	}
	if err := a.Store.Save(a.ExportPath, history.Swatches()); err != nil {
		return fmt.Errorf("export swatches: %w", err)
	}
	logger.Info("history exported", zap.String("path", a.ExportPath), zap.Int("swatches", history.Len()))
	return nil
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := NewRootCmd(DefaultPickerFactory)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
