package main

import (
	"fmt"
	"os"

	"github.com/automoto/domemask/config"
	"github.com/automoto/domemask/logger"
	"github.com/automoto/domemask/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(watcher *config.Watcher, log logrus.FieldLogger) *Game {
	return &Game{
		scene: scenes.NewDomeScene(watcher, log),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

type options struct {
	configFile string
	logLevel   string
	width      int
	height     int
	watch      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "domemask",
		Short:        "Place a dome on the ground and mask the world around it",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override window width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "override window height")
	cmd.Flags().BoolVar(&opts.watch, "watch", true, "reload the config file when it changes")

	cmd.AddCommand(newValidateCmd(opts))
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a config file and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configFile == "" {
				return fmt.Errorf("--config is required")
			}
			if _, err := config.Load(opts.configFile, config.Defaults()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", opts.configFile)
			return nil
		},
	}
}

// loadSettings resolves the startup settings and, if asked, a watcher for
// later changes to the same file.
func loadSettings(opts *options, log logrus.FieldLogger) (config.Settings, *config.Watcher, error) {
	settings := config.Defaults()
	var watcher *config.Watcher
	if opts.configFile != "" {
		var err error
		settings, err = config.Load(opts.configFile, settings)
		if err != nil {
			return config.Settings{}, nil, err
		}
		if opts.watch {
			watcher, err = config.Watch(opts.configFile, config.Defaults(), log)
			if err != nil {
				return config.Settings{}, nil, err
			}
		}
	}

	if opts.width > 0 {
		settings.Window.Width = opts.width
	}
	if opts.height > 0 {
		settings.Window.Height = opts.height
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, nil, err
	}
	return settings, watcher, nil
}

func run(opts *options) error {
	log, err := logger.New(opts.logLevel, os.Stderr)
	if err != nil {
		return err
	}

	settings, watcher, err := loadSettings(opts, log)
	if err != nil {
		log.WithError(err).Error("could not load config")
		return err
	}
	config.Apply(settings)
	log.WithFields(logrus.Fields{
		"config": opts.configFile,
		"width":  config.C.Width,
		"height": config.C.Height,
	}).Info("starting")

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(NewGame(watcher, log))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
