package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, redismock.ClientMock) {
		t.Helper()
		rdb, mock := redismock.NewClientMock()

		r := gin.New()
		r.POST("/approvals/:id/approve", middleware.Idempotency(rdb), func(c *gin.Context) {
			lockKey, _ := c.Get("idempotency_lock_key")
			cacheKey, _ := c.Get("idempotency_cache_key")
			c.JSON(http.StatusOK, gin.H{
				"lock_key":  lockKey,
				"cache_key": cacheKey,
			})
		})
		return r, mock
	}

	t.Run("first request takes the lock and proceeds", func(t *testing.T) {
		r, mock := setup(t)

		cacheKey := "idemp:/approvals/:id/approve:abc123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/approvals/5/approve", nil)
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), cacheKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cached response is replayed", func(t *testing.T) {
		r, mock := setup(t)

		cacheKey := "idemp:/approvals/:id/approve:abc123"
		mock.ExpectGet(cacheKey).SetVal(`{"id":5,"status":"Approved"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/approvals/5/approve", nil)
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Approved"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected while lock held", func(t *testing.T) {
		r, mock := setup(t)

		cacheKey := "idemp:/approvals/:id/approve:abc123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/approvals/5/approve", nil)
		req.Header.Set("Idempotency-Key", "abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("request without key bypasses redis", func(t *testing.T) {
		r, mock := setup(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/approvals/5/approve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
