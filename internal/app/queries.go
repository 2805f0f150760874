package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

type PageService struct {
	api   domain.PlacesAPI
	cache domain.PlaceCache
}

func NewPageService(api domain.PlacesAPI, cache domain.PlaceCache) *PageService {
	return &PageService{api: api, cache: cache}
}

// LoadPlaces fetches the full listing and records it as the session's current
// view. This is the only writer of the place cache, so the cache always holds
// the most recent successful fetch.
func (s *PageService) LoadPlaces(ctx context.Context, sess domain.Session) ([]domain.Place, error) {
	places, err := s.api.ListPlaces(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, sess.ID, places); err != nil {
		// cache trouble must not break the page; the list still renders
		log.Warn().Err(err).Str("sid", sess.ID).Msg("place cache set failed")
	}
	return places, nil
}

// CachedPlaces serves the filter path: it reads what the session already has
// rendered, without an API call. Only when the entry expired does it fall
// back to one fresh fetch.
func (s *PageService) CachedPlaces(ctx context.Context, sess domain.Session) ([]domain.Place, error) {
	places, ok, err := s.cache.Get(ctx, sess.ID)
	if err != nil {
		log.Warn().Err(err).Str("sid", sess.ID).Msg("place cache get failed")
	}
	if ok {
		return places, nil
	}
	return s.LoadPlaces(ctx, sess)
}

func (s *PageService) LoadPlace(ctx context.Context, sess domain.Session, id string) (domain.Place, error) {
	return s.api.GetPlace(ctx, sess.Token, id)
}
