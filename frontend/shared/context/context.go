package context

import (
	"context"

	"herbadmin/models"
)

type sessionKey struct{}

// NewContextWithSession makes the session explicit for every downstream
// handler instead of ambient cookie state.
func NewContextWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	return s, ok
}
