package configs

import "time"

// RideSim configures the ride simulator client.
type RideSim struct {
	// ServerURL is the base URL of the matching service.
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	// Token is the driver's bearer token. When empty a token is minted
	// from AUTH_JWT_SECRET, which is only meant for local runs.
	Token       string `env:"TOKEN"`
	DriverID    string `env:"DRIVER_ID" envDefault:"driver-demo"`
	Name        string `env:"NAME" envDefault:"Motorista Demo"`
	ServiceType string `env:"SERVICE_TYPE" envDefault:"uber"`
	// Route is a list of "lat,lng" points separated by "|". The simulated
	// vehicle moves to the next point every StepEvery. A single point
	// keeps it parked.
	Route     []string      `env:"ROUTE" envSeparator:"|" envDefault:"-23.5614,-46.6559"`
	StepEvery time.Duration `env:"STEP_EVERY" envDefault:"30s"`
	// ClipDuration is how long the simulated player takes per clip.
	ClipDuration   time.Duration `env:"CLIP_DURATION" envDefault:"20s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}
