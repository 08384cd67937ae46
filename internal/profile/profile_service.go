package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sistem-pengajuan/internal/auth"
	profileerrors "sistem-pengajuan/internal/profile/errors"
	"sistem-pengajuan/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ProfileResponse, error)
	Invite(ctx context.Context, req InviteUserRequest) (ProfileResponse, error)
	Update(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
	Delete(ctx context.Context, userID string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	userRepo auth.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, userRepo auth.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{db: db, repo: repo, userRepo: userRepo, logger: l}
}

func validRole(role string) bool {
	switch role {
	case rbac.RoleEmployee, rbac.RoleAdmin, rbac.RoleSuperadmin:
		return true
	default:
		return false
	}
}

func (s *service) List(ctx context.Context) ([]ProfileResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ProfileResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Invite(ctx context.Context, req InviteUserRequest) (ProfileResponse, error) {
	s.logger.Debug("invite user requested",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if !validRole(req.Role) {
		return ProfileResponse{}, profileerrors.ErrInvalidRole
	}
	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidJoinDate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return ProfileResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	userQtx := s.userRepo.WithTx(tx)
	profileQtx := s.repo.WithTx(tx)

	user := &auth.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := userQtx.Create(ctx, user); err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}

	p := &Profile{
		UserID:           user.ID,
		FullName:         req.FullName,
		Role:             req.Role,
		Division:         req.Division,
		Position:         req.Position,
		EmploymentStatus: req.EmploymentStatus,
		JoinDate:         joinDate,
	}
	if err := profileQtx.Create(ctx, p); err != nil {
		return ProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("user invited",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role),
	)

	resp := mapToResponse(*p)
	resp.Email = user.Email
	return resp, nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidUserID
	}
	if !validRole(req.Role) {
		return ProfileResponse{}, profileerrors.ErrInvalidRole
	}
	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidJoinDate
	}

	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, profileerrors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}

	p.FullName = req.FullName
	p.Role = req.Role
	p.Division = req.Division
	p.Position = req.Position
	p.EmploymentStatus = req.EmploymentStatus
	p.JoinDate = joinDate

	if err := s.repo.Update(ctx, p); err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("profile updated", zap.String("user_id", userID))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return profileerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	profileQtx := s.repo.WithTx(tx)
	userQtx := s.userRepo.WithTx(tx)

	if err := profileQtx.Delete(ctx, userID); err != nil {
		return err
	}
	if err := userQtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}

func mapToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		UserID:           p.UserID.String(),
		FullName:         p.FullName,
		Role:             p.Role,
		Division:         p.Division,
		Position:         p.Position,
		EmploymentStatus: p.EmploymentStatus,
		JoinDate:         p.JoinDate.Format("2006-01-02"),
	}
	if p.User != nil {
		resp.Email = p.User.Email
	}
	return resp
}
