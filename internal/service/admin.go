package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jimmy00415/ChefWeb-sub000/internal/auth"
	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
)

// AdminService backs the admin dashboard.
type AdminService struct {
	auth   *auth.Authenticator
	repo   repository.Repository
	logger *zap.Logger
}

// NewAdminService creates an admin service
func NewAdminService(authenticator *auth.Authenticator, repo repository.Repository, logger *zap.Logger) *AdminService {
	return &AdminService{auth: authenticator, repo: repo, logger: logger}
}

// Login checks the admin credentials and issues a session token.
func (s *AdminService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	token, expiresAt, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		s.logger.Warn("Admin login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Admin logged in", zap.String("email", req.Email))
	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Stats returns dashboard counters
func (s *AdminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.repo.Stats(ctx)
}
