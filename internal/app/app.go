package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clockalert/docs"
	"clockalert/internal/api"
	"clockalert/internal/commands"
	"clockalert/internal/config"
	"clockalert/internal/events"
	"clockalert/internal/scanner"
	"clockalert/internal/store"
	"clockalert/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// App wires the alarm store, the trigger scanner and the command API.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *store.SQLiteStore
	scanner *scanner.Scanner
	handler http.Handler
}

func New(cfg *config.Config, l *logger.Logger) (*App, error) {
	st, err := store.NewSQLiteStore(cfg.Store.Path, store.WithLogger(l))
	if err != nil {
		return nil, fmt.Errorf("app - New - store.NewSQLiteStore: %w", err)
	}
	if err := st.Initialize(); err != nil {
		// keep serving; every command will soft-fail and say why in the log
		l.Error("app - New - store.Initialize", logger.Err(err))
	}

	hub := events.NewHub(l)
	cmds := commands.New(st, l)
	sc := scanner.New(st, hub,
		scanner.WithInterval(cfg.Scanner.Interval),
		scanner.WithLogger(l),
	)

	docs.SwaggerInfo.Title = "clockalert API"
	docs.SwaggerInfo.Version = "v0.1.0"

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	api.RegisterRoutes(r, cmds, hub)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORS.AllowedOrigins,
		AllowedMethods:   cfg.HTTP.CORS.AllowedMethods,
		AllowedHeaders:   cfg.HTTP.CORS.AllowedHeaders,
		AllowCredentials: cfg.HTTP.CORS.AllowCredentials,
		Debug:            cfg.HTTP.CORS.Debug,
	})

	return &App{
		cfg:     cfg,
		log:     l,
		store:   st,
		scanner: sc,
		handler: c.Handler(r),
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Serve runs the scanner and the HTTP server on ln until ctx is done or the
// server fails, then shuts both down and closes the store.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:     a.handler,
		ReadTimeout: a.cfg.HTTP.Timeout,
		IdleTimeout: a.cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := a.scanner.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		a.log.Info("command API listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app - Serve - http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err := g.Wait()
	if cerr := a.store.Close(); cerr != nil {
		a.log.Error("app - Serve - store.Close", logger.Err(cerr))
	}
	return err
}

// Run listens on the configured address and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	l := logger.New(cfg.Log.Level, cfg.App.Env)

	a, err := New(cfg, l)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.HTTP.Addr())
	if err != nil {
		_ = a.store.Close()
		return fmt.Errorf("app - Run - net.Listen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Serve(ctx, ln); err != nil {
		return err
	}
	l.Info("app - Run - stopped")
	return nil
}
