package approval

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	approvalerrors "leaveflow/internal/approval/errors"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("approval request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseListFilters(c *gin.Context) (managerID, leaveTypeID int64, err error) {
	managerID, err = strconv.ParseInt(c.Query("managerId"), 10, 64)
	if err != nil {
		return 0, 0, approvalerrors.ErrInvalidManagerID
	}

	if raw := c.Query("leaveTypeId"); raw != "" {
		leaveTypeID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, 0, approvalerrors.ErrInvalidLeaveTypeID
		}
	}
	return managerID, leaveTypeID, nil
}

func (h *Handler) ListPending(c *gin.Context) {
	managerID, leaveTypeID, err := parseListFilters(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListPending(c.Request.Context(), managerID, leaveTypeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAll(c *gin.Context) {
	managerID, leaveTypeID, err := parseListFilters(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListAll(c.Request.Context(), managerID, leaveTypeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, false)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, true)
}

func (h *Handler) decide(c *gin.Context, reject bool) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, approvalerrors.ErrInvalidLeaveRequestID)
		return
	}

	var note string
	if reject {
		var req RejectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("http reject validation failed", zap.Error(err))
			httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		note = req.Note
	} else {
		// Approve accepts an empty body; the note is optional
		var req ApproveRequest
		if c.Request.Body != nil && c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				h.logger.Warn("http approve validation failed", zap.Error(err))
				httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
				response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
				return
			}
		}
		note = req.Note
	}

	var resp LeaveApprovalResponse
	if reject {
		resp, err = h.service.Reject(c.Request.Context(), id, note)
	} else {
		resp, err = h.service.Approve(c.Request.Context(), id, note)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
