package domain

// Session is the page-session context: the visitor's bearer token (empty for
// public browsing) and the cache key for the place list currently rendered.
// It is built once per page load and passed explicitly; nothing here is
// module-level state.
type Session struct {
	ID    string
	Token string
}

func (s Session) Authenticated() bool { return s.Token != "" }
