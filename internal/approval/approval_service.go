package approval

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	approvalerrors "leaveflow/internal/approval/errors"
	"leaveflow/internal/events"
	"leaveflow/internal/messaging/kafka"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	ListPending(ctx context.Context, managerID, leaveTypeID int64) ([]LeaveApprovalResponse, error)
	ListAll(ctx context.Context, managerID, leaveTypeID int64) ([]LeaveApprovalResponse, error)
	Approve(ctx context.Context, id int64, note string) (LeaveApprovalResponse, error)
	Reject(ctx context.Context, id int64, note string) (LeaveApprovalResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	loc    *time.Location
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, loc *time.Location, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, loc, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{db: db, repo: repo, outbox: outbox, loc: loc, logger: l}
}

func (s *service) ListPending(ctx context.Context, managerID, leaveTypeID int64) ([]LeaveApprovalResponse, error) {
	requests, err := s.repo.ListByManager(ctx, managerID, StatusPending, leaveTypeID)
	if err != nil {
		s.logger.Error("list pending approvals failed",
			zap.Int64("manager_id", managerID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) ListAll(ctx context.Context, managerID, leaveTypeID int64) ([]LeaveApprovalResponse, error) {
	requests, err := s.repo.ListByManager(ctx, managerID, "", leaveTypeID)
	if err != nil {
		s.logger.Error("list approvals failed",
			zap.Int64("manager_id", managerID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) Approve(ctx context.Context, id int64, note string) (LeaveApprovalResponse, error) {
	return s.decide(ctx, id, StatusApproved, note)
}

func (s *service) Reject(ctx context.Context, id int64, note string) (LeaveApprovalResponse, error) {
	if strings.TrimSpace(note) == "" {
		return LeaveApprovalResponse{}, approvalerrors.ErrNoteRequired
	}
	return s.decide(ctx, id, StatusRejected, note)
}

func (s *service) decide(ctx context.Context, id int64, targetStatus, note string) (LeaveApprovalResponse, error) {
	s.logger.Debug("leave decision requested",
		zap.Int64("leave_request_id", id),
		zap.String("target_status", targetStatus),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave decision begin tx failed", zap.Error(err))
		return LeaveApprovalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveApprovalResponse{}, approvalerrors.ErrLeaveRequestNotFound
		}
		s.logger.Error("leave decision lookup failed",
			zap.Int64("leave_request_id", id),
			zap.Error(err),
		)
		return LeaveApprovalResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("leave decision rejected by status guard",
			zap.Int64("leave_request_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveApprovalResponse{}, approvalerrors.ErrInvalidStatusTransition
	}

	decidedAt := time.Now().In(s.loc)
	l.Status = targetStatus
	l.ApprovalNote = &note
	l.ApprovedDate = &decidedAt

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("leave decision persist failed",
			zap.Int64("leave_request_id", id),
			zap.Error(err),
		)
		return LeaveApprovalResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueDecisionEvent(ctx, tx, l, note, decidedAt); err != nil {
			return LeaveApprovalResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave decision commit failed",
			zap.Int64("leave_request_id", id),
			zap.Error(err),
		)
		return LeaveApprovalResponse{}, err
	}
	s.logger.Info("leave decision success",
		zap.Int64("leave_request_id", id),
		zap.String("status", targetStatus),
	)

	return mapToResponse(*l), nil
}

func (s *service) enqueueDecisionEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, note string, decidedAt time.Time) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveDecidedEvent{
		EventType:      "leave_decided",
		RequestID:      rid,
		LeaveRequestID: l.ID,
		ManagerID:      l.ManagerID,
		Status:         l.Status,
		Note:           note,
		DecidedAt:      decidedAt.UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave decision event failed",
			zap.Int64("leave_request_id", l.ID),
			zap.Error(err),
		)
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   strconv.FormatInt(l.ID, 10),
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave decision outbox persist failed",
			zap.Int64("leave_request_id", l.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(l LeaveRequest) LeaveApprovalResponse {
	resp := LeaveApprovalResponse{
		ID:            l.ID,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		TotalDays:     l.TotalDays,
		Status:        l.Status,
		RequestedDate: l.RequestedDate.Format("2006-01-02T15:04:05"),
		ApprovalNote:  l.ApprovalNote,
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FirstName + " " + l.Employee.LastName
		resp.AvatarURL = l.Employee.AvatarURL
	}
	if l.LeaveType != nil {
		id := l.LeaveType.ID
		resp.LeaveTypeID = &id
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ApprovedDate != nil {
		v := l.ApprovedDate.Format("2006-01-02T15:04:05")
		resp.ApprovedDate = &v
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveApprovalResponse {
	resp := make([]LeaveApprovalResponse, len(requests))
	for i, l := range requests {
		resp[i] = mapToResponse(l)
	}
	return resp
}
