package hbnb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/hbnb"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLogin_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct{ Email, Password string }
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "a@b.com" || body.Password != "x" {
			t.Errorf("unexpected credentials: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "T1"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100) // high RPS for tests
	token, err := cl.Login(testCtx(t), "a@b.com", "x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token != "T1" {
		t.Fatalf("token = %q, want T1", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	_, err := cl.Login(testCtx(t), "a@b.com", "wrong")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d", authErr.Status)
	}
}

func TestListPlaces_BearerOnlyWhenTokenPresent(t *testing.T) {
	var lastAuth atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth.Store(r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Place{{ID: "p1", Title: "Cabin", Price: 80}})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)

	places, err := cl.ListPlaces(testCtx(t), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := lastAuth.Load().(string); got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
	if len(places) != 1 || places[0].Title != "Cabin" {
		t.Fatalf("unexpected places: %+v", places)
	}

	if _, err := cl.ListPlaces(testCtx(t), "T1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := lastAuth.Load().(string); got != "Bearer T1" {
		t.Fatalf("Authorization = %q, want Bearer T1", got)
	}
}

func TestListPlaces_FetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	_, err := cl.ListPlaces(testCtx(t), "")
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestListPlaces_SingleAttempt(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	if _, err := cl.ListPlaces(testCtx(t), ""); err == nil {
		t.Fatalf("expected error")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", n)
	}
}

func TestGetPlace(t *testing.T) {
	owner := "Alice"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places/p1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Place{
			ID: "p1", Title: "Cabin", Price: 80, Owner: &owner,
			Amenities: []domain.Amenity{{Name: "WiFi"}, {Name: "Pool"}},
		})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	p, err := cl.GetPlace(testCtx(t), "T1", "p1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Owner == nil || *p.Owner != "Alice" || len(p.Amenities) != 2 {
		t.Fatalf("unexpected place: %+v", p)
	}
}

func TestSubmitReview_ServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer T1" {
			t.Errorf("Authorization = %q", got)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Rating required"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	err := cl.SubmitReview(testCtx(t), "T1", domain.Review{Text: "nice", PlaceID: "p1"})
	var revErr *domain.ReviewError
	if !errors.As(err, &revErr) {
		t.Fatalf("expected ReviewError, got %v", err)
	}
	if revErr.Message != "Rating required" {
		t.Fatalf("message = %q", revErr.Message)
	}
}

func TestSubmitReview_GenericFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	err := cl.SubmitReview(testCtx(t), "T1", domain.Review{Text: "nice", Rating: 5, PlaceID: "p1"})
	var revErr *domain.ReviewError
	if !errors.As(err, &revErr) {
		t.Fatalf("expected ReviewError, got %v", err)
	}
	if revErr.Message == "" {
		t.Fatalf("expected a fallback message")
	}
}

func TestSubmitReview_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rv domain.Review
		if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
			t.Errorf("decode review: %v", err)
		}
		if rv.Rating != 4 || rv.PlaceID != "p1" {
			t.Errorf("unexpected review: %+v", rv)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "r1"})
	}))
	defer ts.Close()

	cl := hbnb.New(ts.URL, 100)
	if err := cl.SubmitReview(testCtx(t), "T1", domain.Review{Text: "great", Rating: 4, PlaceID: "p1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
