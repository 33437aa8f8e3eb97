package handlers

import (
	"net/http/httptest"
	"testing"

	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerTagsCorrelationID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	utils.Logger = zap.New(core)
	defer func() { utils.Logger = nil }()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("requestID", "req-123")

	requestLogger(c).Info("window checked")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requestID"]; got != "req-123" {
		t.Errorf("requestID field = %v, want req-123", got)
	}
}

func TestRequestLoggerWithoutID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	utils.Logger = zap.New(core)
	defer func() { utils.Logger = nil }()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	requestLogger(c).Info("window checked")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 log entry, got %d", len(entries))
	}
	if _, present := entries[0].ContextMap()["requestID"]; present {
		t.Error("requestID field must be absent when the middleware did not run")
	}
}
