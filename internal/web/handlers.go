package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cmeynet/holbertonschool-hbnb/internal/app"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// priceThresholds are the filter options offered on the index page.
var priceThresholds = []int{10, 50, 100}

type Handlers struct {
	Pages   *app.PageService
	Reviews *app.ReviewService
	API     domain.PlacesAPI
	R       *Renderer
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Handle("/static/*", StaticHandler())

	s.mux.Group(func(r chi.Router) {
		r.Use(Gate(PageIndex))
		r.Get("/", h.index)
		r.Get("/index.html", h.index)
	})
	s.mux.Group(func(r chi.Router) {
		r.Use(Gate(PageLogin))
		r.Get("/login.html", h.loginPage)
		r.Post("/login", h.login)
	})
	s.mux.Group(func(r chi.Router) {
		r.Use(Gate(PagePlaceDetail))
		r.Get("/place.html", h.placeDetail)
	})
	s.mux.Group(func(r chi.Router) {
		r.Use(Gate(PageAddReview))
		r.Get("/add_review.html", h.addReviewPage)
		r.Post("/reviews", h.submitReview)
	})
}

// writePage buffers the render so a template error never emits half a page.
func writePage(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Error().Err(err).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("write page failed")
	}
}

// index serves the listing. A plain load fetches from the API and becomes the
// session's cached view; a filter change (max_price present) re-renders from
// that cache with visibility toggled, never refetching on the warm path.
func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())

	selected := ""
	var places []domain.Place
	var err error
	if _, filtering := r.URL.Query()["max_price"]; filtering {
		selected = r.URL.Query().Get("max_price")
		places, err = h.Pages.CachedPlaces(r.Context(), sess)
	} else {
		places, err = h.Pages.LoadPlaces(r.Context(), sess)
	}
	if err != nil {
		// load failure leaves the list empty; the visitor can reload
		log.Error().Err(err).Msg("place listing failed")
		places = nil
	}

	writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.R.Index(buf, IndexData{
			Authenticated: sess.Authenticated(),
			Thresholds:    priceThresholds,
			Selected:      selected,
			Cards:         app.FilterByPrice(places, selected),
		})
	})
}

func (h *Handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.R.Login(buf, LoginData{Authenticated: sess.Authenticated()})
	})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	email := r.FormValue("email")
	password := r.FormValue("password")

	token, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		msg := "Login failed: " + loginFailureText(err)
		status := http.StatusUnauthorized
		var authErr *domain.AuthError
		if errors.As(err, &authErr) && authErr.Status != 0 {
			status = authErr.Status
		}
		writePage(w, status, func(buf *bytes.Buffer) error {
			return h.R.Login(buf, LoginData{
				Authenticated: sess.Authenticated(),
				Message:       msg,
				Email:         email,
			})
		})
		return
	}

	setTokenCookie(w, token)
	http.Redirect(w, r, "/index.html", http.StatusSeeOther)
}

func loginFailureText(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusText
	}
	return err.Error()
}

func (h *Handlers) placeDetail(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Redirect(w, r, "/index.html", http.StatusSeeOther)
		return
	}

	data := PlaceData{Authenticated: sess.Authenticated()}
	place, err := h.Pages.LoadPlace(r.Context(), sess, id)
	if err != nil {
		// details section stays empty; no user-facing alert for loads
		log.Error().Err(err).Str("place", id).Msg("place detail failed")
	} else {
		pv := BuildPlaceView(place)
		data.Place = &pv
	}

	writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.R.Place(buf, data)
	})
}

func (h *Handlers) addReviewPage(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Redirect(w, r, "/index.html", http.StatusSeeOther)
		return
	}
	writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.R.AddReview(buf, ReviewData{Authenticated: sess.Authenticated(), PlaceID: id})
	})
}

// submitReview posts the form. Success resets the form under a confirmation;
// any failure keeps the visitor's input and shows the server's message (or a
// transport-level one). Nothing is retried.
func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	form := app.ReviewForm{
		Text:    r.FormValue("review"),
		Rating:  r.FormValue("rating"),
		PlaceID: r.FormValue("place_id"),
	}

	data := ReviewData{
		Authenticated: sess.Authenticated(),
		PlaceID:       form.PlaceID,
	}
	err := h.Reviews.Submit(r.Context(), sess, form)
	switch {
	case err == nil:
		data.Success = "Review submitted successfully!"
	default:
		var revErr *domain.ReviewError
		if errors.As(err, &revErr) {
			data.Message = "Failed to submit review: " + revErr.Message
		} else {
			data.Message = "Error submitting review: " + err.Error()
		}
		// form is NOT reset on failure
		data.Text = form.Text
		data.Rating = form.Rating
	}

	writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.R.AddReview(buf, data)
	})
}
