package http

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	loginflow "herbadmin/frontend/login"
	sessioncontext "herbadmin/frontend/shared/context"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/cache"
	"herbadmin/infrastructure/config"
	"herbadmin/infrastructure/seal"
	sessioncookie "herbadmin/infrastructure/session"
	"herbadmin/infrastructure/sqlite"
	"herbadmin/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Cfg      config.Config
	DB       *sqlite.DB
	Sessions *cache.SessionCache
	Sealer   *seal.Sealer
	Backend  *backend.Client
}

// NewServer creates the admin http server.
func NewServer(cfg config.Config, db *sqlite.DB, sessions *cache.SessionCache, sealer *seal.Sealer, client *backend.Client) *Server {
	s := &Server{
		Addr:     cfg.AppAddr,
		router:   chi.NewRouter(),
		Cfg:      cfg,
		DB:       db,
		Sessions: sessions,
		Sealer:   sealer,
		Backend:  client,
		server: &http.Server{
			MaxHeaderBytes: 1 << 20,
		},
	}

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	})

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.RegisterRoutes()

	s.server.Handler = s.router
	return s
}

// AuthenticateMiddleware resolves the session cookie into an explicit
// session on the request context. Unauthenticated requests land on the
// login screen; every admin view runs behind this guard.
func (s *Server) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		session, ok := s.resolveSession(r.Context(), cookie.Value)
		if !ok {
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		if session.Expired() {
			http.SetCookie(w, sessioncookie.SessionCookie("", -1))
			s.Sessions.Delete(cookie.Value)
			if err := loginflow.DeleteSessionByToken(r.Context(), s.DB, cookie.Value); err != nil {
				slog.Error("cannot delete expired session", slog.Any("err", err))
			}
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		ctx := sessioncontext.NewContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) resolveSession(ctx context.Context, token string) (session models.Session, ok bool) {
	if cached, found := s.Sessions.Find(token); found {
		return cached, true
	}

	dbSession, err := loginflow.LoadSessionByToken(ctx, s.DB, s.Sealer, token)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("load session from db failed", slog.Any("err", err))
		}
		return session, false
	}

	s.Sessions.Add(dbSession)
	return dbSession, true
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}
