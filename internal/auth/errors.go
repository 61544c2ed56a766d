package auth

import "errors"

// Token source errors. The REST client surfaces these as authorization
// failures without issuing a network request.
var (
	// ErrNoToken indicates no credential has been installed yet.
	ErrNoToken = errors.New("no token available")

	// ErrTokenExpired indicates the stored credential's exp claim has
	// passed and a request with it would only bounce off the backend.
	ErrTokenExpired = errors.New("token expired")
)
