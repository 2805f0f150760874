package domain

type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Owner       *string   `json:"owner"` // display name; nil when the API omits it
	Amenities   []Amenity `json:"amenities"`
}

type Amenity struct {
	Name string `json:"name"`
}
