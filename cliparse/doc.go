// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: sqlite file or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AppToken: Slack slash-command verification token (required)
  - ClientID / ClientSecret: Slack OAuth app credentials (install route only)
  - SSLCert / SSLKey: TLS key pair; plain HTTP when both are empty
  - HelpFile: markdown shown for --help (default: Help.md)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	SLACK_APP_TOKEN     → -app-token
	SLACK_CLIENT_ID     → -client-id
	SLACK_CLIENT_SECRET → -client-secret
	SSL_CERT            → -ssl-cert
	SSL_KEY             → -ssl-key
	HELP_FILE           → -help-file

CLI flags take precedence over environment variables. A .env file, if
present, is loaded into the environment by main before parsing.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SLACK_APP_TOKEN must be provided
  - SSL_CERT and SSL_KEY must be provided together
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
