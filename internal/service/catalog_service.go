package service

import (
	"context"

	"oss-kar/internal/model"
	"oss-kar/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.OptionRepository
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.OptionRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// ListOptions retrieves every option grouped by category.
func (s *catalogService) ListOptions(ctx context.Context) (*model.Catalog, error) {
	options, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list options")
		return nil, model.NewPersistenceError("list options", err)
	}

	catalog := model.NewCatalog(options)

	s.logger.Debug().Int("count", len(options)).Msg("options retrieved")

	return catalog, nil
}
