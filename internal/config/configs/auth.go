package configs

// Auth configures how the HTTP layer identifies the calling user. With an
// empty JWTSecret the X-User-ID header is trusted instead, which is only
// suitable behind an authenticating gateway.
//
// ServiceToken guards the routes that supply tasks and report campaign
// deliveries. When it is empty those routes reject every request.
type Auth struct {
	JWTSecret    string `env:"JWT_SECRET"`
	Issuer       string `env:"ISSUER"`
	ServiceToken string `env:"SERVICE_TOKEN"`
}
