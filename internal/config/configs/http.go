package configs

// HTTP configures the server carrying the promotion API. Only the bind
// port is configurable; the service listens on all interfaces and TLS
// is terminated upstream.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
