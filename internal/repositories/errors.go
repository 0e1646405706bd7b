package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Callers check it with errors.Is and translate it to a 404.
var ErrNotFound = errors.New("record not found")

// PageSize is the fixed number of rows returned per page by List queries.
const PageSize = 10
