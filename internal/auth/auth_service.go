package auth

import (
	"context"
	"os"
	"time"

	autherrors "sistem-pengajuan/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProfileInfo adalah potongan profil yang dibutuhkan saat login.
// Interface lokal agar package auth tidak bergantung ke package profile.
type ProfileInfo struct {
	FullName string
	Role     string
	Division string
	Position string
}

type ProfileReader interface {
	GetProfileInfo(ctx context.Context, userID string) (ProfileInfo, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	// ChangePassword mengganti password user setelah memverifikasi
	// password lamanya.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

type service struct {
	repo     Repository
	profiles ProfileReader
}

func NewService(repo Repository, profiles ProfileReader) Service {
	return &service{repo: repo, profiles: profiles}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	// 1. Ambil user
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 3. Ambil role dari profil; enforcement route tetap lewat Casbin
	info, err := s.profiles.GetProfileInfo(ctx, user.ID.String())
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := s.generateToken(user.ID.String(), info.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user.ID.String(), info.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     info.FullName,
		Role:     info.Role,
		Division: info.Division,
		Position: info.Position,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	info, err := s.profiles.GetProfileInfo(ctx, user.ID.String())
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	newAccessToken, err := s.generateToken(user.ID.String(), info.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(user.ID.String(), info.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     info.FullName,
		Role:     info.Role,
		Division: info.Division,
		Position: info.Position,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	info, err := s.profiles.GetProfileInfo(ctx, u.ID.String())
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     info.FullName,
		Role:     info.Role,
		Division: info.Division,
		Position: info.Position,
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return autherrors.ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, id, string(hashed))
}

func (s *service) generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
