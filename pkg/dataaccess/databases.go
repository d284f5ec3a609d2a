package dataaccess

import "errors"

// mongoDatabase is the database all collections live in.
const mongoDatabase = "foxfire"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")
