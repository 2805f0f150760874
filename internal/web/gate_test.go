package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmeynet/holbertonschool-hbnb/internal/web"
)

func TestGate_ProtectedWithoutToken_RedirectsOnly(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	for _, kind := range []web.PageKind{web.PagePlaceDetail, web.PageAddReview} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/place.html?id=p1", nil)
		web.Gate(kind)(next).ServeHTTP(rec, req)

		if called {
			t.Fatalf("kind %v: handler ran without a token", kind)
		}
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("kind %v: status %d", kind, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/index.html" {
			t.Fatalf("kind %v: redirected to %q", kind, loc)
		}
	}
}

func TestGate_PublicWithoutToken_Continues(t *testing.T) {
	for _, kind := range []web.PageKind{web.PageIndex, web.PageLogin} {
		var sawToken string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawToken = web.SessionFrom(r.Context()).Token
			w.WriteHeader(http.StatusOK)
		})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/index.html", nil)
		web.Gate(kind)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("kind %v: status %d", kind, rec.Code)
		}
		if sawToken != "" {
			t.Fatalf("kind %v: unexpected token %q", kind, sawToken)
		}
	}
}

func TestGate_TokenReachesSession(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = web.SessionFrom(r.Context()).Token
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/place.html?id=p1", nil)
	req.Header.Set("Cookie", "token=T1")
	web.Gate(web.PagePlaceDetail)(next).ServeHTTP(rec, req)

	if got != "T1" {
		t.Fatalf("session token = %q, want T1", got)
	}
}

func TestGate_IssuesSessionIDOnce(t *testing.T) {
	var sid string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid = web.SessionFrom(r.Context()).ID
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/index.html", nil)
	web.Gate(web.PageIndex)(next).ServeHTTP(rec, req)

	if sid == "" {
		t.Fatalf("expected a session id to be issued")
	}
	issued := ""
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			issued = c.Value
		}
	}
	if issued != sid {
		t.Fatalf("sid cookie %q does not match session id %q", issued, sid)
	}

	// second request echoes the cookie; no new cookie is set
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/index.html", nil)
	req2.Header.Set("Cookie", "sid="+issued)
	web.Gate(web.PageIndex)(next).ServeHTTP(rec2, req2)

	if sid != issued {
		t.Fatalf("session id changed between requests")
	}
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "sid" {
			t.Fatalf("sid re-issued for a returning visitor")
		}
	}
}
