package core

import "errors"

var ErrCtxCannotNewRootCtx = errors.New("cannot create a request context for the root user")
