package viewstate

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-viewstore/datastore"
)

// errorMessage converts a facade error into the human-readable message the
// Error state carries. The view models are the error boundary: nothing past
// this function ever reaches the rendering layer as an error value.
func errorMessage(err error) string {
	var netErr *datastore.NetworkError
	var srvErr *datastore.ServerError

	switch {
	case errors.Is(err, datastore.ErrNotFound):
		return "the requested data could not be found"
	case errors.As(err, &netErr):
		return "could not reach the server, check your connection"
	case errors.As(err, &srvErr):
		return fmt.Sprintf("the server reported a problem (status %d)", srvErr.StatusCode)
	default:
		return fmt.Sprintf("failed to load data: %v", err)
	}
}
