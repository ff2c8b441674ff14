package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/session"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/terminal"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := words.Load(cfg.Words.StartFile, cfg.Words.Fallback, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}

	dict, closeDict, err := openDictionary(ctx, cfg.Dict)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Dict.Backend).Msg("failed to open dictionary")
	}
	defer closeDict()

	engine := game.NewEngine(src, dict,
		game.WithLocale(cfg.Dict.Locale),
		game.WithMinLength(cfg.Rules.MinWordLength),
		game.WithRootWord(cfg.Rules.AllowRootWord),
		game.WithLogger(log.Logger),
	)

	ui := terminal.New(os.Stdout)
	mgr := session.NewManager(engine, store.NewMemoryStore(),
		session.WithRender(ui.Render),
		session.WithLogger(log.Logger),
	)

	log.Info().Int("rootWords", src.Len()).Str("dictionary", cfg.Dict.Backend).Msg("starting wordscramble")
	if err := terminal.Run(ctx, mgr, ui, os.Stdin); err != nil {
		log.Error().Err(err).Msg("terminal exited")
	}
}

// openDictionary builds the configured Dictionary backend. The returned
// close function is always safe to call.
func openDictionary(ctx context.Context, cfg config.Dictionary) (game.Dictionary, func(), error) {
	if cfg.Backend != config.BackendSQLite {
		set, err := dictionary.LoadSet(cfg.File, cfg.Locale)
		if err != nil {
			return nil, func() {}, err
		}
		log.Debug().Int("words", set.Len(cfg.Locale)).Msg("in-memory dictionary loaded")
		return set, func() {}, nil
	}

	db, err := dictionary.OpenSQLite(cfg.DSN, log.Logger)
	if err != nil {
		return nil, func() {}, err
	}
	list, err := dictionary.ReadList(cfg.File)
	if err != nil {
		_ = db.Close()
		return nil, func() {}, err
	}
	if err := db.Seed(ctx, cfg.Locale, list); err != nil {
		_ = db.Close()
		return nil, func() {}, err
	}
	return db, func() { _ = db.Close() }, nil
}
