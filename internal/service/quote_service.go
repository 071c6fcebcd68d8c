package service

import (
	"context"

	"oss-kar/internal/model"
	"oss-kar/internal/pricing"
	"oss-kar/internal/repository"

	"github.com/rs/zerolog"
)

// quoteService implements QuoteService.
type quoteService struct {
	repo   repository.OptionRepository
	engine *pricing.Engine
	logger zerolog.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(repo repository.OptionRepository, engine *pricing.Engine, logger zerolog.Logger) QuoteService {
	return &quoteService{
		repo:   repo,
		engine: engine,
		logger: logger.With().Str("service", "quote").Logger(),
	}
}

// Calculate prices a selection. Ids missing from the catalog are ignored.
func (s *quoteService) Calculate(ctx context.Context, sel model.Selection) (*model.Quote, error) {
	sel = sel.Normalize()
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	ids := sel.OptionIDs()
	if len(ids) == 0 {
		quote := s.engine.Quote(nil)
		return &quote, nil
	}

	options, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("id_count", len(ids)).Msg("failed to look up options")
		return nil, model.NewPersistenceError("look up options", err)
	}

	if len(options) < len(ids) {
		s.logger.Debug().
			Int("requested", len(ids)).
			Int("found", len(options)).
			Msg("selection references unknown options")
	}

	quote := s.engine.Quote(options)

	return &quote, nil
}
