package login

import "github.com/google/uuid"

func newSessionToken() string {
	return uuid.NewString()
}
