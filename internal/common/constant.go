package common

// AuthorizationHeaderName is the HTTP header carrying the session token on
// outbound requests, in the form "Bearer <token>".
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
