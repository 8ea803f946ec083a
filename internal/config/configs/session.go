package configs

import "time"

// Session holds the ride timings used by the simulator. Defaults are the
// production values.
type Session struct {
	FirstAdDelay time.Duration `env:"FIRST_AD_DELAY" envDefault:"15s"`
	NextAdDelay  time.Duration `env:"NEXT_AD_DELAY" envDefault:"45s"`
	RetryDelay   time.Duration `env:"RETRY_DELAY" envDefault:"5s"`
	EvalTimeout  time.Duration `env:"EVAL_TIMEOUT" envDefault:"20s"`
	LogTimeout   time.Duration `env:"LOG_TIMEOUT" envDefault:"10s"`
	// FallbackLat and FallbackLng replace the location when no fix is
	// available. São Paulo city centre by default.
	FallbackLat float64 `env:"FALLBACK_LAT" envDefault:"-23.5505"`
	FallbackLng float64 `env:"FALLBACK_LNG" envDefault:"-46.6333"`
}
