// Package services contains server-side business logic. This file implements
// UserService, which checks credentials against the record source and, when
// login enforcement is on, issues access tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/server/auth"
	"github.com/dmitrijs2005/gophdemo/internal/server/config"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
	"github.com/dmitrijs2005/gophdemo/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the transport layer.
// Token is empty unless login enforcement is enabled.
type LoginResult struct {
	User  models.PublicUser
	Token string
}

// UserService provides the user-facing operations of the API:
// credential checks and the public user listing.
type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	issueTokens                 bool
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		issueTokens:                 cfg.RequireLogin,
	}
}

// Login matches username and password exactly against the record set.
// No match yields common.ErrorUnauthorized; store failures yield
// common.ErrorInternal.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users().FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	res := &LoginResult{User: user.Public()}
	if s.issueTokens {
		token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.accessTokenValidityDuration)
		if err != nil {
			return nil, common.ErrorInternal
		}
		res.Token = token
	}
	return res, nil
}

// List returns the public projection of every record, ordered by id.
func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	records, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	out := make([]models.PublicUser, 0, len(records))
	for _, u := range records {
		out = append(out, u.Public())
	}
	return out, nil
}
