package domain

import "context"

// PlacesAPI is the remote HBnB API as the front-end consumes it. Token is the
// raw bearer credential; callers pass "" when browsing without one.
type PlacesAPI interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	ListPlaces(ctx context.Context, token string) ([]Place, error)
	GetPlace(ctx context.Context, token, id string) (Place, error)
	SubmitReview(ctx context.Context, token string, r Review) error
}

// PlaceCache holds the place list most recently fetched for a session, so the
// price filter can re-render without another round trip to the API.
type PlaceCache interface {
	Get(ctx context.Context, sid string) ([]Place, bool, error)
	Set(ctx context.Context, sid string, places []Place) error
	Del(ctx context.Context, sid string) error
}
