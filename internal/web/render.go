package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/cmeynet/holbertonschool-hbnb/internal/app"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded stylesheet and friends under /static/.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Renderer turns view data into markup. Handlers fetch; these functions only
// format, so they test without a network or a server.
type Renderer struct{ t *template.Template }

func NewRenderer() *Renderer {
	return &Renderer{t: template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))}
}

type IndexData struct {
	Authenticated bool
	Message       string
	Thresholds    []int
	Selected      string
	Cards         []app.PlaceCard
}

type LoginData struct {
	Authenticated bool
	Message       string
	Email         string
}

// PlaceView is the detail page's flattened read model: fallbacks are applied
// here, once, instead of in the template.
type PlaceView struct {
	ID          string
	Title       string
	Host        string
	Price       float64
	Description string
	Amenities   string
}

type PlaceData struct {
	Authenticated bool
	Message       string
	Place         *PlaceView // nil leaves the details section empty
}

type ReviewData struct {
	Authenticated bool
	Message       string
	Success       string
	PlaceID       string
	Text          string
	Rating        string
}

// BuildPlaceView applies the display fallbacks: a missing owner shows as
// "Unknown", no amenities as "None".
func BuildPlaceView(p domain.Place) PlaceView {
	host := "Unknown"
	if p.Owner != nil && *p.Owner != "" {
		host = *p.Owner
	}
	amenities := "None"
	if len(p.Amenities) > 0 {
		names := make([]string, len(p.Amenities))
		for i, a := range p.Amenities {
			names[i] = a.Name
		}
		amenities = strings.Join(names, ", ")
	}
	return PlaceView{
		ID:          p.ID,
		Title:       p.Title,
		Host:        host,
		Price:       p.Price,
		Description: p.Description,
		Amenities:   amenities,
	}
}

func (r *Renderer) Index(w io.Writer, d IndexData) error {
	return r.t.ExecuteTemplate(w, "index", d)
}

func (r *Renderer) Login(w io.Writer, d LoginData) error {
	return r.t.ExecuteTemplate(w, "login", d)
}

func (r *Renderer) Place(w io.Writer, d PlaceData) error {
	return r.t.ExecuteTemplate(w, "place", d)
}

func (r *Renderer) AddReview(w io.Writer, d ReviewData) error {
	return r.t.ExecuteTemplate(w, "add_review", d)
}
