package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on guarded requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchema is the expected prefix of the Authorization header value.
const BearerSchema = "Bearer"
