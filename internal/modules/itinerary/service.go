// README: Itinerary planning service; AI call with deterministic fallback.
package itinerary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"yatra/internal/modules/trip"
)

// providerTimeout bounds a single AI generation call.
const providerTimeout = 30 * time.Second

// Provider generates itinerary text from a trip request. Implemented by
// ai.GeminiProvider; any error is recovered locally by the fallback generator.
type Provider interface {
	GenerateItinerary(ctx context.Context, req trip.Request) (string, error)
}

// Cache is a best-effort response cache. Implemented by Store.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, text string)
}

// Service orchestrates itinerary planning. Both provider and cache may be nil:
// without a provider every request is served by the fallback generator,
// without a cache every request is generated fresh.
type Service struct {
	provider Provider
	cache    Cache
	log      *logrus.Logger
}

func NewService(provider Provider, cache Cache, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{provider: provider, cache: cache, log: log}
}

// PlanResult is the response shape shared with the presentation layer.
type PlanResult struct {
	Itinerary string `json:"itinerary"`
	Source    string `json:"source"`
}

// Plan validates the request and produces itinerary text. The user always
// receives some itinerary: provider failures are logged and recovered by the
// fallback generator, never surfaced as errors.
func (s *Service) Plan(ctx context.Context, req trip.Request) (PlanResult, error) {
	if err := req.Validate(); err != nil {
		return PlanResult{}, err
	}

	key := requestKey(req)
	if s.cache != nil {
		if text, ok := s.cache.Get(ctx, key); ok {
			return PlanResult{Itinerary: text, Source: SourceCache}, nil
		}
	}

	if s.provider != nil {
		pctx, cancel := context.WithTimeout(ctx, providerTimeout)
		text, err := s.provider.GenerateItinerary(pctx, req)
		cancel()
		if err == nil && strings.TrimSpace(text) != "" {
			if s.cache != nil {
				s.cache.Set(ctx, key, text)
			}
			return PlanResult{Itinerary: text, Source: SourceGemini}, nil
		}
		s.log.WithError(err).WithField("destination", req.Destination()).
			Warn("ai generation failed, serving fallback itinerary")
	}

	// Fallback output is not cached so that a recovered provider takes over
	// on the next identical request.
	return PlanResult{Itinerary: Generate(req), Source: SourceFallback}, nil
}

// requestKey derives a stable cache key from the canonical request JSON.
func requestKey(req trip.Request) string {
	b, _ := json.Marshal(req)
	sum := sha256.Sum256(b)
	return "itinerary:" + hex.EncodeToString(sum[:])
}
