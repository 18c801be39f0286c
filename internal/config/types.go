package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	AdminPassword string
	SecureCookies bool
	CORS          CORSConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type CORSConfig struct {
	AllowedOrigins []string
}
