package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/db"
	"github.com/askia-app/askia/router"
	"github.com/askia-app/askia/slackapi"
	"github.com/askia-app/askia/store"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Help text shown for /askia --help
	help := "Usage: /askia \"Question?\" \"Option A\" \"Option B\" ..."
	if text, err := os.ReadFile(cfg.HelpFile); err != nil {
		slog.Warn("help file not readable, using built-in usage line", "path", cfg.HelpFile, "error", err)
	} else {
		help = string(text)
	}

	// Create router
	st := store.New(dbConn)
	mux := router.NewRouter(st, slackapi.Client{}, cfg, help)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start the server, with TLS when a key pair is configured
	slog.Info("Listening", "port", cfg.Port, "tls", cfg.SSLCert != "")
	if cfg.SSLCert != "" {
		err = server.ListenAndServeTLS(cfg.SSLCert, cfg.SSLKey)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
