package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/dto/response"
	"airline-backoffice/pkg/failure"
	"airline-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo is stored with a session for auditing.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, staffID uuid.UUID) (*response.StaffResponse, error)
	ListStaff(ctx context.Context) ([]response.StaffResponse, error)
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	staff, err := s.repo.Staff.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	if staff == nil {
		s.log.Warn("Staff not found for login", zap.String("username", req.Username))
		return nil, failure.Unauthorized("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, staff.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("staff_id", staff.ID.String()))
		return nil, failure.Unauthorized("invalid credentials")
	}

	if !staff.IsActive {
		s.log.Warn("Inactive staff tried to login", zap.String("staff_id", staff.ID.String()))
		return nil, failure.Forbidden("account is deactivated")
	}

	session, err := s.createSession(ctx, staff.ID, client)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Staff logged in",
		zap.String("staff_id", staff.ID.String()),
		zap.String("username", staff.Username))

	resp := response.LoginToResponse(staff, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return failure.Unauthorized("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		return writeError(err, "session", tokenUUID)
	}

	s.log.Info("Staff logged out")
	return nil
}

func (s *authService) Me(ctx context.Context, staffID uuid.UUID) (*response.StaffResponse, error) {
	staff, err := s.repo.Staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return nil, failure.NotFound("staff %s not found", staffID)
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (s *authService) ListStaff(ctx context.Context) ([]response.StaffResponse, error) {
	members, err := s.repo.Staff.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}

	out := make([]response.StaffResponse, len(members))
	for i, m := range members {
		out[i] = response.StaffToResponse(m)
	}
	return out, nil
}

func (s *authService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	staff, err := s.newStaff(req.Username, req.Password, req.FullName, entity.StaffRole(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		return nil, failure.FromPg(err, "staff")
	}

	s.log.Info("Staff account created",
		zap.String("staff_id", staff.ID.String()),
		zap.String("username", staff.Username),
		zap.String("role", string(staff.Role)))

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

// EnsureAdmin seeds the configured admin account when no staff exists yet.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	username, password := s.config.Auth.AdminUsername, s.config.Auth.AdminPassword
	if username == "" || password == "" {
		return nil
	}

	count, err := s.repo.Staff.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count staff: %w", err)
	}
	if count > 0 {
		return nil
	}

	staff, err := s.newStaff(username, password, "Administrator", entity.StaffRoleAdmin)
	if err != nil {
		return err
	}
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Initial admin account created", zap.String("username", staff.Username))
	return nil
}

func (s *authService) newStaff(username, password, fullName string, role entity.StaffRole) (*entity.Staff, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	return &entity.Staff{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		IsActive:     true,
	}, nil
}

func (s *authService) createSession(ctx context.Context, staffID uuid.UUID, client ClientInfo) (*entity.Session, error) {
	expiry := time.Duration(s.config.Auth.SessionExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		StaffID:   staffID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(expiry),
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
