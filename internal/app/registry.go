package app

import (
	"context"
	"database/sql"
	"path/filepath"

	"sistem-pengajuan/internal/attendance"
	"sistem-pengajuan/internal/auth"
	"sistem-pengajuan/internal/dashboard"
	"sistem-pengajuan/internal/files"
	"sistem-pengajuan/internal/leave"
	"sistem-pengajuan/internal/messaging/kafka"
	"sistem-pengajuan/internal/profile"
	"sistem-pengajuan/internal/rbac"
	"sistem-pengajuan/internal/report"
	"sistem-pengajuan/internal/setting"
	"sistem-pengajuan/internal/shared/counter"
	"sistem-pengajuan/internal/storage"
	"sistem-pengajuan/internal/submission"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// profileReaderAdapter menjembatani auth.ProfileReader dengan
// repository profile tanpa membuat auth bergantung ke package profile.
type profileReaderAdapter struct {
	repo profile.Repository
}

func (a *profileReaderAdapter) GetProfileInfo(ctx context.Context, userID string) (auth.ProfileInfo, error) {
	p, err := a.repo.FindByUserID(ctx, userID)
	if err != nil {
		return auth.ProfileInfo{}, err
	}
	return auth.ProfileInfo{
		FullName: p.FullName,
		Role:     p.Role,
		Division: p.Division,
		Position: p.Position,
	}, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.FileStorage,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	fileRepo := files.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	submissionRepo := submission.NewRepository(gormDB)
	settingRepo := setting.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	fileService := files.NewService(store, fileRepo)
	authService := auth.NewService(authRepo, &profileReaderAdapter{repo: profileRepo})
	profileService := profile.NewService(db, profileRepo, authRepo)
	settingService := setting.NewService(settingRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo, leaveRepo, fileService)
	leaveService := leave.NewService(db, leaveRepo, fileService, outboxRepo)
	submissionService := submission.NewService(db, submissionRepo, counterRepo, settingService, fileService, outboxRepo)
	reportService := report.NewService(submissionRepo, profileRepo)
	dashboardService := dashboard.NewService(submissionRepo, leaveRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	fileHandler := files.NewHandler(fileService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	submissionHandler := submission.NewHandler(submissionService, rdb)
	settingHandler := setting.NewHandler(settingService)
	reportHandler := report.NewHandler(reportService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		profile.RegisterRoutes(api, profileHandler, rbacService)
		files.RegisterRoutes(api, fileHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		submission.RegisterRoutes(api, submissionHandler, rbacService, rdb)
		setting.RegisterRoutes(api, settingHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
	}

	return nil
}
