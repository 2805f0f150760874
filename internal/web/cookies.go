package web

import (
	"net/http"
	"strings"
)

const (
	// TokenCookie holds the bearer token proving a prior login. Path /, no
	// expiry: the credential lives for the browser session.
	TokenCookie = "token"
	// sidCookie keys the visitor's place cache.
	sidCookie = "sid"
)

// TokenFromHeader looks a cookie value up in a raw Cookie header: the header
// is cut at "; name=" and the value runs to the next ";". Returns false when
// the name is not present. Pure lookup, no error conditions.
func TokenFromHeader(raw, name string) (string, bool) {
	parts := strings.Split("; "+raw, "; "+name+"=")
	if len(parts) != 2 {
		return "", false
	}
	return strings.SplitN(parts[1], ";", 2)[0], true
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{Name: TokenCookie, Value: token, Path: "/"})
}

func setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{Name: sidCookie, Value: sid, Path: "/", HttpOnly: true})
}
