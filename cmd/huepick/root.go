package main

import (
	"fmt"

	"github.com/fwojciec/huepick"
	"github.com/fwojciec/huepick/bubbletea"
	"github.com/fwojciec/huepick/clipboard"
	"github.com/fwojciec/huepick/colorful"
	"github.com/fwojciec/huepick/config"
	"github.com/fwojciec/huepick/jsonl"
	"github.com/fwojciec/huepick/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// PickerFactory builds the interactive picker from validated settings.
type PickerFactory func(cfg *config.Config, logger *zap.Logger) (huepick.Picker, error)

// DefaultPickerFactory returns the Bubble Tea picker.
func DefaultPickerFactory(cfg *config.Config, logger *zap.Logger) (huepick.Picker, error) {
	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	cb, err := clipboard.New(cfg.Clipboard)
	if err != nil {
		return nil, err
	}
	return bubbletea.NewPicker(
		bubbletea.WithTheme(theme),
		bubbletea.WithClipboard(cb),
		bubbletea.WithContraster(colorful.NewContrast()),
		bubbletea.WithLogger(logger),
	), nil
}

// session holds flag values and the settings resolved before a command runs.
type session struct {
	configPath string
	dotEnvPath string
	verbose    bool
	theme      string
	clipboard  string
	color      string
	export     string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd returns the huepick command tree. Running the root command
// starts the interactive picker built by newPicker.
func NewRootCmd(newPicker PickerFactory) *cobra.Command {
	s := &session{dotEnvPath: ".env"}

	root := &cobra.Command{
		Use:   "huepick",
		Short: "Terminal color picker",
		Long: `huepick is a terminal color picker with a saturation/lightness surface,
a hue strip, HEX/RGB/HSL fields and a session history of saved colors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := s.cfg.InitialColor()
			if err != nil {
				return err
			}
			picker, err := newPicker(s.cfg, s.logger)
			if err != nil {
				return err
			}
			app := &App{
				Picker:     picker,
				Store:      jsonl.NewStore(),
				Logger:     s.logger,
				Initial:    initial,
				ExportPath: s.cfg.Export,
			}
			return app.Run(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/huepick/config.yaml)")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&s.theme, "theme", "", "color theme (dark, light)")

	f := root.Flags()
	f.StringVar(&s.color, "color", "", "initial color (hex, rgb() or hsl())")
	f.StringVar(&s.clipboard, "clipboard", "", "clipboard backend (auto, pbcopy, system, osc52)")
	f.StringVar(&s.export, "export", "", "write saved colors to this JSONL file at exit")

	root.AddCommand(newConvertCmd(s), newPaletteCmd(s))
	return root
}

// setup resolves settings with precedence defaults < file < env < flags
// and builds the logger for the command about to run.
func (s *session) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(s.dotEnvPath); err != nil {
		return err
	}

	path := s.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, field := range map[string]*string{
		"theme":     &cfg.Theme,
		"color":     &cfg.Color,
		"clipboard": &cfg.Clipboard,
		"export":    &cfg.Export,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*field = v
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The picker owns the terminal, so it only logs to a file.
	interactive := !cmd.HasParent()
	logger, err := newLogger(cfg.Log, s.verbose, interactive)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}
