package service

import (
	"context"
	"strings"

	"oss-kar/internal/model"
	"oss-kar/internal/shareurl"

	"github.com/rs/zerolog"
)

// linkService implements LinkService.
type linkService struct {
	quotes  QuoteService
	baseURL string
	logger  zerolog.Logger
}

// NewLinkService creates a new link service. Full links are built by
// prefixing baseURL to the configuration path.
func NewLinkService(quotes QuoteService, baseURL string, logger zerolog.Logger) LinkService {
	return &linkService{
		quotes:  quotes,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With().Str("service", "link").Logger(),
	}
}

// Generate builds the shareable link for a selection.
func (s *linkService) Generate(_ context.Context, sel model.Selection) (*model.ShareLink, error) {
	sel = sel.Normalize()
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	configURL := shareurl.Encode(sel)

	s.logger.Debug().Str("config_url", configURL).Msg("share link generated")

	return &model.ShareLink{
		Success:   true,
		ConfigURL: configURL,
		FullURL:   s.baseURL + configURL,
	}, nil
}

// Resolve decodes a shareable link and prices the selection it carries.
func (s *linkService) Resolve(ctx context.Context, raw string) (*model.ResolvedLink, error) {
	sel := shareurl.Decode(raw).Normalize()

	quote, err := s.quotes.Calculate(ctx, sel)
	if err != nil {
		return nil, err
	}

	return &model.ResolvedLink{
		Selection: sel,
		ConfigURL: shareurl.Encode(sel),
		Quote:     *quote,
	}, nil
}
