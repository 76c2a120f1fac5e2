package configs

import "time"

// HTTP defines configuration for the dashboard API server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a request including its body; uploads of
	// large CSV files may need more.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	// ShutdownTimeout is how long in-flight requests get on termination.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"33554432"`
}
