package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/gitdeck/internal/config"
	"github.com/jask/gitdeck/internal/database"
	"github.com/jask/gitdeck/internal/database/repository"
	"github.com/jask/gitdeck/internal/deck"
	"github.com/jask/gitdeck/internal/gitsim"
	"github.com/jask/gitdeck/internal/logging"
	"github.com/jask/gitdeck/internal/service"
	"github.com/jask/gitdeck/internal/tui"
)

type options struct {
	configPath string
	deckPath   string
	watch      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "gitdeck",
		Short: "Interactive Git workshop slides for the terminal",
		Long: `gitdeck presents an introductory Git workshop as terminal slides.

Slides can carry a simulated git terminal (with canned output), a quiz, or a
visitor profile form. The profile and the last viewed slide are kept in a
local sqlite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresentation(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $GITDECK_CONFIG or ~/.config/gitdeck/config.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	root.Flags().StringVar(&opts.deckPath, "deck", "", "slide deck YAML file (default: built-in deck)")
	root.Flags().BoolVar(&opts.watch, "watch", false, "reload the deck file when it changes")

	root.AddCommand(
		newResolveCmd(),
		newCommandsCmd(),
		newProfileCmd(opts),
		newResetCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

func loadConfig(opts *options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv("GITDECK_CONFIG")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	if opts.deckPath != "" {
		cfg.Deck.Path = opts.deckPath
	}
	if opts.watch {
		cfg.Deck.Watch = true
	}
	return cfg, nil
}

// env is the shared runtime for commands that touch the database.
type env struct {
	cfg      config.Config
	logger   *zap.Logger
	db       *sql.DB
	profiles *service.ProfileService
}

func openEnv(opts *options) (*env, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return nil, err
	}
	db, err := database.Setup(cfg.Database.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &env{
		cfg:    cfg,
		logger: logger,
		db:     db,
		profiles: &service.ProfileService{
			KV:     repository.NewKVRepo(db),
			Logger: logger.Named("profile"),
		},
	}, nil
}

func (e *env) Close() {
	_ = e.db.Close()
	_ = e.logger.Sync()
}

func runPresentation(ctx context.Context, opts *options) error {
	e, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer e.Close()

	d, err := deck.Load(e.cfg.Deck.Path)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}
	renderer, err := deck.NewRenderer(e.cfg.UI.Style, e.cfg.UI.WordWrap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var updates <-chan deck.Update
	switch {
	case e.cfg.Deck.Watch && e.cfg.Deck.Path != "":
		w, err := deck.NewWatcher(e.cfg.Deck.Path, e.logger.Named("watch"))
		if err != nil {
			return err
		}
		go w.Run(ctx)
		updates = w.Updates()
	case e.cfg.Deck.Watch:
		e.logger.Warn("deck watch ignored for the built-in deck")
	}

	e.logger.Info("presentation started", zap.String("deck", d.Title), zap.Int("slides", len(d.Slides)))
	app := tui.New(ctx, d, tui.Deps{
		Resolver:    gitsim.New(),
		Renderer:    renderer,
		Profiles:    e.profiles,
		Logger:      e.logger.Named("tui"),
		TypingSpeed: e.cfg.UI.TypingSpeed(),
		WordWrap:    e.cfg.UI.WordWrap,
		Updates:     updates,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
