package cmd

// Config carries process-level settings loaded from the environment.
type Config struct {
	HTTPPort string
	LogLevel string
}
