package db

import "errors"

var ErrDraftNotFound = errors.New("draft not found")
