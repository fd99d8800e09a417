package core

import "github.com/google/uuid"

// Ctx is the per-request identity handed to every model controller call.
// It is built by the auth middleware and never mutated afterwards.
type Ctx struct {
	userID uuid.UUID
	roles  []string
}

// RootCtx returns the context used by internal jobs and bootstrap code.
func RootCtx() *Ctx {
	return &Ctx{userID: uuid.Nil}
}

// NewCtx creates a request context for an authenticated user.
func NewCtx(userID uuid.UUID, roles []string) (*Ctx, error) {
	if userID == uuid.Nil {
		return nil, ErrCtxCannotNewRootCtx
	}
	return &Ctx{userID: userID, roles: roles}, nil
}

func (c *Ctx) UserID() uuid.UUID {
	return c.userID
}

func (c *Ctx) IsRoot() bool {
	return c.userID == uuid.Nil
}

// HasRole checks whether the user has a specific role.
func (c *Ctx) HasRole(role string) bool {
	for _, r := range c.roles {
		if r == role {
			return true
		}
	}
	return false
}
