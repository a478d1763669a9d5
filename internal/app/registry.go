package app

import (
	"database/sql"
	"os"
	"time"

	"leaveflow/internal/approval"
	"leaveflow/internal/calendar"
	"leaveflow/internal/document"
	"leaveflow/internal/holiday"
	"leaveflow/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultApprovalTimezone = "Asia/Ho_Chi_Minh"

// approvalLocation resolves the timezone used for decision timestamps.
// Falls back to a fixed UTC+7 zone when the tzdata lookup fails.
func approvalLocation() *time.Location {
	name := os.Getenv("APPROVAL_TIMEZONE")
	if name == "" {
		name = defaultApprovalTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("approval timezone lookup failed, using fixed UTC+7",
			zap.String("timezone", name),
			zap.Error(err),
		)
		return time.FixedZone("ICT", 7*3600)
	}
	return loc
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	holidayRepo := holiday.NewRepository(gormDB)
	eventRepo := calendar.NewRepository(gormDB)
	approvalRepo := approval.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	holidayService := holiday.NewService(db, holidayRepo)
	calendarService := calendar.NewService(db, eventRepo, holidayRepo)
	approvalService := approval.NewServiceWithOutbox(db, approvalRepo, outboxRepo, approvalLocation())
	documentService := document.NewService()

	// --- Handlers ---
	holidayHandler := holiday.NewHandler(holidayService)
	calendarHandler := calendar.NewHandler(calendarService)
	approvalHandler := approval.NewHandlerWithRedis(approvalService, rdb)
	documentHandler := document.NewHandler(documentService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		holiday.RegisterRoutes(api, holidayHandler)
		calendar.RegisterRoutes(api, calendarHandler)
		approval.RegisterRoutes(api, approvalHandler, rdb)
		document.RegisterRoutes(api, documentHandler)
	}

	return nil
}
