package configs

import "time"

// HTTP configures the wizard API server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequestTimeout bounds every API request, submissions included. Large
	// creative uploads need a generous value.
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10m"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
