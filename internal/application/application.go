package application

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/eugenenazirov/pwrs/internal/config"
	"github.com/eugenenazirov/pwrs/internal/passphrase"
	"github.com/eugenenazirov/pwrs/internal/sampler"
	"github.com/eugenenazirov/pwrs/internal/wordlist"
)

// App encapsulates the loaded dictionary and the passphrase generator.
type App struct {
	cfg        config.Config
	candidates []string
	sampler    sampler.Sampler
	generator  *passphrase.Generator
	logger     *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithSampler overrides the default crypto-seeded sampler (primarily for tests).
func WithSampler(s sampler.Sampler) Option {
	return func(a *App) {
		a.sampler = s
	}
}

// New loads the configured dictionary and wires the generator.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.sampler == nil {
		app.sampler = sampler.New(nil)
	}

	logger.Debug("configuration resolved",
		zap.Uint("min", cfg.Min),
		zap.Uint("max", cfg.Max),
		zap.Uint("number", cfg.Number),
		zap.Uint("count", cfg.Count),
		zap.String("wordlist", cfg.Wordlist),
		zap.String("case", string(cfg.Case)),
	)

	words, err := wordlist.Load(cfg.Wordlist)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	app.candidates = words.Filter(cfg.Min, cfg.Max)

	logger.Debug("word list loaded",
		zap.String("path", cfg.Wordlist),
		zap.String("size", humanize.Bytes(uint64(words.Size()))),
		zap.String("lines", humanize.Comma(int64(words.Len()))),
		zap.Int("candidates", len(app.candidates)),
	)
	if uint(len(app.candidates)) < cfg.Number {
		logger.Warn("too few candidate words for requested passphrase length",
			zap.Int("candidates", len(app.candidates)),
			zap.Uint("number", cfg.Number),
		)
	}

	app.generator = passphrase.NewGenerator(app.candidates, app.sampler, cfg.Number, cfg.Case)

	return app, nil
}

// Candidates returns a copy of the words eligible for sampling.
func (a *App) Candidates() []string {
	out := make([]string, len(a.candidates))
	copy(out, a.candidates)
	return out
}

// Run writes the configured number of passphrases to w.
func (a *App) Run(w io.Writer) error {
	if err := a.generator.Write(w, a.cfg.Count); err != nil {
		return err
	}
	a.logger.Debug("passphrases written", zap.Uint("count", a.cfg.Count))
	return nil
}
