package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AppToken     string
	ClientID     string
	ClientSecret string
	SSLCert      string
	SSLKey       string
	HelpFile     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("askia", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SSLCert, "ssl-cert", "", "TLS certificate file (serve plain HTTP when empty)")
	fs.StringVar(&cfg.SSLKey, "ssl-key", "", "TLS private key file")
	fs.StringVar(&cfg.HelpFile, "help-file", "", "Path to the help markdown file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AppToken, "app-token", "", "Slack app verification token (prefer env)")
	fs.StringVar(&cfg.ClientID, "client-id", "", "Slack OAuth client ID (prefer env)")
	fs.StringVar(&cfg.ClientSecret, "client-secret", "", "Slack OAuth client secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	// Secrets - the verification token MUST be provided
	if cfg.AppToken == "" {
		cfg.AppToken = os.Getenv("SLACK_APP_TOKEN")
	}
	if cfg.AppToken == "" {
		return Config{}, errors.New("SLACK_APP_TOKEN required")
	}

	// OAuth credentials are optional; without them the install route
	// reports 500 but the rest of the bot works against saved teams.
	if cfg.ClientID == "" {
		cfg.ClientID = os.Getenv("SLACK_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = os.Getenv("SLACK_CLIENT_SECRET")
	}

	if cfg.SSLCert == "" {
		cfg.SSLCert = os.Getenv("SSL_CERT")
	}
	if cfg.SSLKey == "" {
		cfg.SSLKey = os.Getenv("SSL_KEY")
	}
	if (cfg.SSLCert == "") != (cfg.SSLKey == "") {
		return Config{}, errors.New("SSL_CERT and SSL_KEY must be set together")
	}

	if cfg.HelpFile == "" {
		cfg.HelpFile = os.Getenv("HELP_FILE")
		if cfg.HelpFile == "" {
			cfg.HelpFile = "Help.md"
		}
	}

	return cfg, nil
}
