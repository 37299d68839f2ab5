package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyHeader    = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"
	RequestIDHeader      = "X-Request-ID"
)

type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (response []byte, inProgress bool, err error)
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string, response []byte) error
	Release(ctx context.Context, key string) error
}

type storedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Keys are scoped by method and path. Server errors are not stored, so the
// client may retry them. A nil store disables the middleware.
func Idempotency(store IdempotencyStore, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if store == nil || key == "" {
			c.Next()
			return
		}

		scoped := c.Request.Method + ":" + c.Request.URL.Path + ":" + key
		ctx := c.Request.Context()

		stored, inProgress, err := store.Lookup(ctx, scoped)
		if err != nil {
			log.WarnContext(ctx, "idempotency lookup failed", "error", err)
			c.Next()
			return
		}
		if inProgress {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "concurrent request with the same idempotency key"})
			return
		}
		if stored != nil {
			var resp storedResponse
			if err := json.Unmarshal(stored, &resp); err == nil {
				c.Header(IdempotencyHitHeader, "true")
				c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
				c.Abort()
				return
			}
			log.WarnContext(ctx, "discarding unreadable idempotent response", "key", key)
		}

		acquired, err := store.Reserve(ctx, scoped)
		if err != nil {
			log.WarnContext(ctx, "idempotency reserve failed", "error", err)
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "concurrent request with the same idempotency key"})
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(ctx, scoped); err != nil {
				log.WarnContext(ctx, "idempotency release failed", "error", err)
			}
			return
		}
		payload, err := json.Marshal(storedResponse{Status: status, Body: rec.body.Bytes()})
		if err != nil {
			return
		}
		if err := store.Complete(ctx, scoped, payload); err != nil {
			log.WarnContext(ctx, "idempotency complete failed", "error", err)
		}
	}
}

// RequestLogger tags each request with an id and logs it once served.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		log.InfoContext(c.Request.Context(), "http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
