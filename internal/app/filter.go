package app

import (
	"strconv"

	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// PlaceCard is one listing entry as the index page shows it. Hidden cards
// stay in the markup with display toggled off, so changing the threshold is
// reversible without refetching.
type PlaceCard struct {
	domain.Place
	Hidden bool
}

// FilterByPrice marks each place hidden iff a numeric threshold is selected
// and the price exceeds it. "All" (or anything non-numeric) hides nothing.
// Order is preserved; this never touches the network.
func FilterByPrice(places []domain.Place, threshold string) []PlaceCard {
	limit, err := strconv.ParseFloat(threshold, 64)
	all := threshold == "" || err != nil

	cards := make([]PlaceCard, len(places))
	for i, p := range places {
		cards[i] = PlaceCard{Place: p, Hidden: !all && p.Price > limit}
	}
	return cards
}
