// Package httpapi exposes the accounts service over HTTP. Routing and
// request shaping live here; all invariants are enforced by the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avolkovs/teambase/internal/logging"
	"github.com/avolkovs/teambase/internal/server/models"
	"github.com/avolkovs/teambase/internal/server/services"
	"github.com/gin-gonic/gin"
)

type accountSvc interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Token, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context) error
}

type workspaceSvc interface {
	IsAdmin(ctx context.Context, user *models.User, workspaceID string) (bool, error)
}

type Server struct {
	address    string
	logger     logging.Logger
	accounts   accountSvc
	workspaces workspaceSvc
}

func NewServer(address string, l logging.Logger, accounts *services.AccountService, workspaces *services.WorkspaceService) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "httpapi"),
		accounts:   accounts,
		workspaces: workspaces,
	}
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.POST("/register", s.register)
	api.POST("/login", s.login)

	authed := api.Group("")
	authed.Use(s.requireAuth())
	authed.GET("/me", s.me)
	authed.POST("/logout", s.logout)
	authed.GET("/workspaces/:id/admin", s.workspaceAdmin)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
