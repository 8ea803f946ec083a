package configs

import "time"

// Auth configures bearer token verification.
type Auth struct {
	// JWTSecret is the HS256 signing key shared with the token issuer. It
	// has no default and must not be blank.
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	Issuer    string        `env:"ISSUER" envDefault:"movo-ads"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
