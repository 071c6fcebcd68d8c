package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oss-kar/internal/model"
	"oss-kar/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyCatalog is returned when the sources hold no options.
	ErrEmptyCatalog = errors.New("catalog contains no options")
	// ErrNoSource is returned when Seed is called without sources.
	ErrNoSource = errors.New("no catalog source given")
)

// Seeder writes a loaded catalog into the option store.
type Seeder struct {
	loader Loader
	repo   repository.OptionRepository
	logger zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(loader Loader, repo repository.OptionRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		repo:   repo,
		logger: logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Seed loads every source concurrently, validates the merged options and
// upserts them. It returns the number of options written.
// Ids must be unique across all sources.
func (s *Seeder) Seed(ctx context.Context, sources ...string) (int, error) {
	if len(sources) == 0 {
		return 0, ErrNoSource
	}

	options, err := s.loadAll(ctx, sources)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := Validate(options); err != nil {
		s.logger.Error().Err(err).Strs("sources", sources).Msg("catalog rejected")
		return 0, err
	}

	if err := s.repo.Upsert(ctx, options); err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}

	s.logger.Info().
		Strs("sources", sources).
		Int("options", len(options)).
		Msg("catalog seeded")

	return len(options), nil
}

// loadAll merges the sources in argument order.
func (s *Seeder) loadAll(ctx context.Context, sources []string) ([]model.Option, error) {
	parts := make([][]model.Option, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			options, err := s.loader.Load(ctx, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			s.logger.Debug().Str("source", source).Int("options", len(options)).Msg("source loaded")
			parts[i] = options
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Option
	for _, part := range parts {
		merged = append(merged, part...)
	}
	return merged, nil
}

// Validate checks ids, categories, names and prices of a catalog.
func Validate(options []model.Option) error {
	if len(options) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[int64]struct{}, len(options))
	for i, o := range options {
		if o.ID < 0 {
			return fmt.Errorf("option %d: id must be non-negative", i)
		}
		if _, ok := seen[o.ID]; ok {
			return fmt.Errorf("option %d: duplicate id %d", i, o.ID)
		}
		seen[o.ID] = struct{}{}

		if !o.Category.Valid() {
			return fmt.Errorf("option %d: unknown category %q", o.ID, o.Category)
		}
		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("option %d: name is required", o.ID)
		}
		if o.Price.IsNegative() {
			return fmt.Errorf("option %d: price must be non-negative", o.ID)
		}
	}

	return nil
}
