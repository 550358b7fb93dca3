package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/mhudec/catalog/internal/api"
	"github.com/mhudec/catalog/internal/auth"
	"github.com/mhudec/catalog/internal/config"
	"github.com/mhudec/catalog/internal/db"
	"github.com/mhudec/catalog/internal/store"
	"github.com/mhudec/catalog/internal/web"
)

// defaultCategories seeds a fresh database when init is run without an
// explicit list.
const defaultCategories = "Soccer,Basketball,Baseball,Frisbee,Snowboarding,Rock Climbing,Foosball,Skating,Hockey"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: catalog <init|serve|token>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	case "token":
		cmdToken(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: catalog <init|serve|token>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", "catalog.sqlite3", "path to SQLite database file")
	categories := fs.String("categories", defaultCategories, "comma-separated category names to seed")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: database file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	database, err := initDatabase(*dbPath, *categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	database.Close()

	fmt.Printf("Database created: %s\n", *dbPath)
	fmt.Println("Schema initialized and categories seeded.")
}

func cmdServe(args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to SQLite database file")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.IdentityMode, "identity", cfg.IdentityMode, "identity mode: tokeninfo or jwt")
	fs.StringVar(&cfg.TokenInfoURL, "tokeninfo-url", cfg.TokenInfoURL, "tokeninfo endpoint for the tokeninfo identity mode")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "signing secret for the jwt identity mode")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "log file path (default: stdout/stderr only)")
	fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cleanup, err := setupLogger(cfg.LogPath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Open the database and apply the schema eagerly; a missing file is
	// created on first start.
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	st := store.New(database)

	var verifier auth.Verifier
	switch cfg.IdentityMode {
	case config.IdentityTokenInfo:
		verifier = auth.NewTokenInfoVerifier(cfg.TokenInfoURL, cfg.OracleTimeout)
	case config.IdentityJWT:
		verifier = &auth.JWTVerifier{Secret: cfg.JWTSecret}
	}

	mux, err := web.NewRouter(st, verifier)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}
	api.Register(mux, st)

	handler := api.LoggingMiddleware(mux)

	slog.Info("server listening", "addr", cfg.Addr, "identity", cfg.IdentityMode)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func cmdToken(args []string) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	secret := fs.String("secret", "", "signing secret (must match the server's jwt-secret)")
	subject := fs.String("subject", "", "identity subject to mint a token for")
	fs.Parse(args)

	if *secret == "" || *subject == "" {
		fmt.Fprintln(os.Stderr, "Error: -secret and -subject are required")
		os.Exit(1)
	}

	token, err := auth.MintToken(*secret, *subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "Set this as the id_token cookie when using the jwt identity mode.")
}

// initDatabase creates a new database, applies the schema, and seeds
// categories.
func initDatabase(path, categories string) (*sql.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		os.Remove(path)
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	st := store.New(database)
	ctx := context.Background()
	for _, name := range strings.Split(categories, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := st.CreateCategory(ctx, name); err != nil {
			database.Close()
			os.Remove(path)
			return nil, fmt.Errorf("seeding category %q: %w", name, err)
		}
	}

	return database, nil
}

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR
// goes to stderr. If logPath is non-empty, all levels are also written to
// that file. Returns a cleanup function that closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var cleanup func()

	stdoutW := io.Writer(os.Stdout)
	stderrW := io.Writer(os.Stderr)

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdoutW = io.MultiWriter(os.Stdout, f)
		stderrW = io.MultiWriter(os.Stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdoutW, opts),
		stderr: slog.NewTextHandler(stderrW, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}
