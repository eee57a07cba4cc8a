package internal

// Option customizes the application assembled by Run.
type Option func(*application)

// application collects the dependencies Run wires together before
// starting the HTTP server.
type application struct {
	config *Config
}

// WithConfig supplies the service configuration (HTTP listener, SQLite
// path, CORS origins). Run fails without one.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}
