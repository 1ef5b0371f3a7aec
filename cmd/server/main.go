package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"oceanbistro/internal/config"
	"oceanbistro/internal/contact"
	"oceanbistro/internal/db"
	"oceanbistro/internal/db/mock"
	applog "oceanbistro/internal/log"
	"oceanbistro/internal/menu"
	"oceanbistro/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

// flagOverrides holds command-line values that take precedence over the environment.
type flagOverrides struct {
	addr      string
	logLevel  string
	menuPath  string
	staticDir string
}

var (
	overrides flagOverrides

	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	loadMenuFunc        = menu.Load
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		return sigCh, func() { signal.Stop(sigCh) }
	}
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	code := 0
	root := newRootCommand(&code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return code
}

func newRootCommand(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "ocean-bistro",
		Short:         "Serve the Ocean Bistro restaurant site",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			*code = run(cmd.Context())
			return nil
		},
	}

	root.Flags().StringVar(&overrides.addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	root.Flags().StringVar(&overrides.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	root.Flags().StringVar(&overrides.menuPath, "menu", "", "TOML or YAML menu file (overrides MENU_PATH)")
	root.Flags().StringVar(&overrides.staticDir, "static-dir", "", "directory served under /assets/ (overrides STATIC_DIR)")
	return root
}

func (o flagOverrides) apply(cfg config.Config) config.Config {
	if strings.TrimSpace(o.addr) != "" {
		cfg.Server.Addr = o.addr
	}
	if strings.TrimSpace(o.logLevel) != "" {
		cfg.Logging.Level = o.logLevel
	}
	if strings.TrimSpace(o.menuPath) != "" {
		cfg.Site.MenuPath = o.menuPath
	}
	if strings.TrimSpace(o.staticDir) != "" {
		cfg.Server.StaticDir = o.staticDir
	}
	return cfg
}

func run(ctx context.Context) int {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}
	cfg = overrides.apply(cfg)

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		return 1
	}

	siteMenu, err := loadMenuFunc(cfg.Site.MenuPath)
	if err != nil {
		applog.Error(ctx, "failed to load menu", "path", cfg.Site.MenuPath, "error", err)
		return 1
	}
	applog.Debug(ctx, "menu loaded", "path", cfg.Site.MenuPath, "items", siteMenu.ItemCount())

	srv, err := newServerFunc(server.Config{
		Addr:      cfg.Server.Addr,
		StaticDir: cfg.Server.StaticDir,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database:    database,
		Menu:        siteMenu,
		Sender:      contact.NewSimulatedSender(cfg.Contact.Delay),
		Environment: cfg.Site.Environment,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	if err := serve(ctx, srv, cfg.Server.Addr); err != nil {
		applog.Error(ctx, "server exited with error", "error", err)
		return 1
	}
	applog.Info(ctx, "server stopped")
	return 0
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch {
	case cfg.UseMock:
		applog.Info(ctx, "using mock database")
		return newMockDatabaseFunc(ctx)
	case cfg.Enabled():
		applog.Info(ctx, "connecting to preference database")
		return configureDatabase(cfg)
	default:
		applog.Info(ctx, "no database configured, theme preferences stay in the session")
		return nil, nil
	}
}

// serve runs the server until it fails, a shutdown signal arrives or ctx ends.
func serve(ctx context.Context, srv serverLifecycle, addr string) error {
	sigCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	served := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(served)
		applog.Info(ctx, "starting http server", "addr", addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			applog.Info(ctx, "shutdown signal received", "signal", sig.String())
		case <-served:
			return nil
		case <-gctx.Done():
			if ctx.Err() == nil {
				return nil
			}
			applog.Info(ctx, "context cancelled, shutting down")
		}
		if err := srv.Stop(); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
