package hbnb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/observability"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// Client talks to the HBnB REST API. Every call is a single attempt: errors
// surface to the caller, who decides what the user sees. No retries.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	resp, err := c.do(ctx, "login", http.MethodPost, c.base+"/auth/login", "", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		drain(resp.Body)
		return "", &domain.AuthError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return out.AccessToken, nil
}

func (c *Client) ListPlaces(ctx context.Context, token string) ([]domain.Place, error) {
	resp, err := c.do(ctx, "list_places", http.MethodGet, c.base+"/places/", token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		drain(resp.Body)
		return nil, &domain.FetchError{Status: resp.StatusCode, Resource: "places"}
	}
	var out []domain.Place
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return out, nil
}

func (c *Client) GetPlace(ctx context.Context, token, id string) (domain.Place, error) {
	resp, err := c.do(ctx, "get_place", http.MethodGet, c.base+"/places/"+id, token, nil)
	if err != nil {
		return domain.Place{}, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		drain(resp.Body)
		return domain.Place{}, &domain.FetchError{Status: resp.StatusCode, Resource: "place " + id}
	}
	var out domain.Place
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Place{}, fmt.Errorf("decode place: %w", err)
	}
	return out, nil
}

func (c *Client) SubmitReview(ctx context.Context, token string, r domain.Review) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, "submit_review", http.MethodPost, c.base+"/reviews/", token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if success(resp.StatusCode) {
		drain(resp.Body)
		return nil
	}
	// The API reports rejections as {"error": "..."}; fall back to a generic
	// message when the body is not that shape.
	msg := "unknown error"
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	} else if st := statusText(resp); st != "" {
		msg = st
	}
	return &domain.ReviewError{Status: resp.StatusCode, Message: msg}
}

// do builds and issues one request, attaching the bearer header only when a
// token is present.
func (c *Client) do(ctx context.Context, op, method, url, token string, body []byte) (*http.Response, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hbnb-web/1.0")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveUpstream(op, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	observability.ObserveUpstream(op, resp.StatusCode, time.Since(start))
	return resp, nil
}

func success(code int) bool { return code >= 200 && code < 300 }

func statusText(resp *http.Response) string {
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return resp.Status
}

func drain(b io.ReadCloser) { _, _ = io.Copy(io.Discard, b) }
