package app

import (
	"github.com/google/uuid"

	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// NewSession builds the page-session context for one request. sid keys the
// visitor's place cache; a fresh id is issued when the browser has none yet.
func NewSession(sid, token string) domain.Session {
	if sid == "" {
		sid = uuid.NewString()
	}
	return domain.Session{ID: sid, Token: token}
}
