// Package services contains the business logic of the accounts service:
// registration with bootstrap-admin assignment, credential verification and
// token issuance, and workspace-level authorization decisions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avolkovs/teambase/internal/common"
	"github.com/avolkovs/teambase/internal/dbx"
	"github.com/avolkovs/teambase/internal/server/auth"
	"github.com/avolkovs/teambase/internal/server/config"
	"github.com/avolkovs/teambase/internal/server/models"
	"github.com/avolkovs/teambase/internal/server/repositories/repomanager"
	"github.com/avolkovs/teambase/internal/server/repositories/users"
)

// MinPasswordLength is the registration password policy.
const MinPasswordLength = 6

// Token is a freshly issued bearer credential. ExpiresAt is absolute; there
// is no server-side revocation, expiry is the only invalidation path.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// AccountService provides account lifecycle operations:
// - Register: create users, first user becomes the global admin
// - Login: verify credentials and mint a bearer token
// - CurrentUser: resolve a presented token back to its account
type AccountService struct {
	db                          *sql.DB
	repos                       repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                          db,
		repos:                       m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// NormalizeEmail lowercases and trims an email so lookups and storage agree
// on a single identity key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the input, hashes the password, and inserts the new
// account. The first user ever stored becomes the global admin; the
// count-check and insert run in one serializable transaction, with a partial
// unique index in the store backing the at-most-one-admin invariant under
// concurrency. Validation failures wrap common.ErrValidation, a duplicate
// email wraps common.ErrAlreadyExists, and any other storage failure wraps
// common.ErrStorage.
func (s *AccountService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {

	if email == "" || password == "" || fullName == "" {
		return nil, fmt.Errorf("%w: required fields missing", common.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password too short", common.ErrValidation)
	}
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 2 {
		return nil, fmt.Errorf("%w: name too short", common.ErrValidation)
	}

	email = NormalizeEmail(email)

	_, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", common.ErrAlreadyExists)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	user, err := s.insertUser(ctx, email, fullName, hash, true)
	if errors.Is(err, users.ErrAdminBootstrapped) {
		// Lost the race for the bootstrap-admin slot; the account still
		// gets created, as a regular member.
		user, err = s.insertUser(ctx, email, fullName, hash, false)
	}
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email already registered", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return sanitize(user), nil
}

// insertUser runs the count-check and insert inside a single serializable
// transaction. allowAdmin false forces a member row regardless of count.
func (s *AccountService) insertUser(ctx context.Context, email, fullName, hash string, allowAdmin bool) (*models.User, error) {

	var user *models.User

	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	err := dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		user = &models.User{
			Email:        email,
			FullName:     fullName,
			PasswordHash: hash,
			Role:         models.RoleMember,
			Workspaces:   []models.WorkspaceMembership{},
		}
		if allowAdmin && count == 0 {
			user.Role = models.RoleAdmin
			user.IsAdmin = true
		}

		user, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the email/password pair and returns a bearer token bound to
// the normalized email. An unknown email and a wrong password are
// indistinguishable: both yield common.ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Token, error) {

	email = NormalizeEmail(email)

	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	expiresAt := time.Now().UTC().Add(s.accessTokenValidityDuration)
	accessToken, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return &Token{AccessToken: accessToken, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// CurrentUser resolves a presented token to its account, with workspace
// memberships attached. Invalid or expired tokens yield
// common.ErrInvalidToken; a token whose subject no longer exists yields
// common.ErrUnauthorized.
func (s *AccountService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {

	subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repos.Users(s.db).GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	memberships, err := s.repos.Memberships(s.db).ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	user.Workspaces = memberships

	return sanitize(user), nil
}

// Logout exists to give callers a symmetric operation to discard their held
// token. Tokens are stateless, so there is nothing server-side to invalidate.
func (s *AccountService) Logout(ctx context.Context) error {
	return nil
}

// sanitize strips credential material before a record leaves the service.
func sanitize(user *models.User) *models.User {
	u := *user
	u.PasswordHash = ""
	if u.Workspaces == nil {
		u.Workspaces = []models.WorkspaceMembership{}
	}
	return &u
}
