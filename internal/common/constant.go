package common

const (
	// AuthorizationHeaderName carries the access token when the server
	// runs with login enforcement enabled.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)
