package configs

import "time"

// Remote configures the campaign, auth and catalog services.
type Remote struct {
	// BaseURL is the API root; endpoints such as campaigns/ and
	// auth/jwt/create/ are resolved below it.
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8000/api/"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// RPS and Burst limit outbound requests across all sessions. A
	// non-positive RPS disables the limiter.
	RPS   float64 `env:"RPS" envDefault:"20"`
	Burst int     `env:"BURST" envDefault:"40"`
}
