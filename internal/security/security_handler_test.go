package security_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eleave/internal/security"
	securityerrors "eleave/internal/security/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeSecurityService struct {
	listReadyToLeaveFn func(ctx context.Context, date string) ([]security.ReadyToLeaveResponse, error)
	recordOutFn        func(ctx context.Context, requestID, guardID string) (security.InOutResponse, error)
	recordInFn         func(ctx context.Context, historyID, guardID string) (security.InOutResponse, error)
	listCurrentlyOutFn func(ctx context.Context, date string) ([]security.InOutResponse, error)
	visitorInFn        func(ctx context.Context, guardID string, req security.VisitorInRequest) (security.VisitorResponse, error)
	visitorOutFn       func(ctx context.Context, visitorID, guardID string) (security.VisitorResponse, error)
	visitorsInsideFn   func(ctx context.Context) ([]security.VisitorResponse, error)
}

func (f *fakeSecurityService) ListReadyToLeave(ctx context.Context, date string) ([]security.ReadyToLeaveResponse, error) {
	return f.listReadyToLeaveFn(ctx, date)
}
func (f *fakeSecurityService) RecordOut(ctx context.Context, requestID, guardID string) (security.InOutResponse, error) {
	return f.recordOutFn(ctx, requestID, guardID)
}
func (f *fakeSecurityService) RecordIn(ctx context.Context, historyID, guardID string) (security.InOutResponse, error) {
	return f.recordInFn(ctx, historyID, guardID)
}
func (f *fakeSecurityService) ListCurrentlyOut(ctx context.Context, date string) ([]security.InOutResponse, error) {
	return f.listCurrentlyOutFn(ctx, date)
}
func (f *fakeSecurityService) VisitorIn(ctx context.Context, guardID string, req security.VisitorInRequest) (security.VisitorResponse, error) {
	return f.visitorInFn(ctx, guardID, req)
}
func (f *fakeSecurityService) VisitorOut(ctx context.Context, visitorID, guardID string) (security.VisitorResponse, error) {
	return f.visitorOutFn(ctx, visitorID, guardID)
}
func (f *fakeSecurityService) VisitorsInside(ctx context.Context) ([]security.VisitorResponse, error) {
	return f.visitorsInsideFn(ctx)
}

func TestSecurityHandler_RecordOut(t *testing.T) {
	t.Run("success uses the guard from the session", func(t *testing.T) {
		requestID := uuid.New().String()
		guardID := uuid.New().String()

		svc := &fakeSecurityService{
			recordOutFn: func(ctx context.Context, rid, gid string) (security.InOutResponse, error) {
				assert.Equal(t, requestID, rid)
				assert.Equal(t, guardID, gid)
				return security.InOutResponse{
					ID:        uuid.New().String(),
					RequestID: rid,
					GuardID:   gid,
					Status:    security.StatusOut,
				}, nil
			},
		}

		h := security.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/security/out/"+requestID, nil)
		c.Params = gin.Params{{Key: "requestId", Value: requestID}}
		c.Set("employee_id", guardID)

		h.RecordOut(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got security.InOutResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, security.StatusOut, got.Status)
	})

	t.Run("duplicate check-out maps to conflict", func(t *testing.T) {
		requestID := uuid.New().String()
		svc := &fakeSecurityService{
			recordOutFn: func(ctx context.Context, rid, gid string) (security.InOutResponse, error) {
				return security.InOutResponse{}, securityerrors.ErrAlreadyCheckedOut
			},
		}

		h := security.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/security/out/"+requestID, nil)
		c.Params = gin.Params{{Key: "requestId", Value: requestID}}
		c.Set("employee_id", uuid.New().String())

		h.RecordOut(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}

func TestSecurityHandler_VisitorIn(t *testing.T) {
	t.Run("missing fields fail binding", func(t *testing.T) {
		svc := &fakeSecurityService{}
		h := security.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/security/visitors", strings.NewReader(`{"visitor_name":"Gita Rahma"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VisitorIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Contains(t, env.Error.Message, "required")
	})
}

func TestSecurityHandler_ReadyToLeave(t *testing.T) {
	t.Run("passes the date filter through", func(t *testing.T) {
		svc := &fakeSecurityService{
			listReadyToLeaveFn: func(ctx context.Context, date string) ([]security.ReadyToLeaveResponse, error) {
				assert.Equal(t, "2026-03-02", date)
				return []security.ReadyToLeaveResponse{{RequestID: uuid.New().String()}}, nil
			},
		}

		h := security.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/security/ready-to-leave?date=2026-03-02", nil)

		h.ReadyToLeave(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSecurityHandler_CurrentlyOut(t *testing.T) {
	t.Run("passes the date filter through", func(t *testing.T) {
		svc := &fakeSecurityService{
			listCurrentlyOutFn: func(ctx context.Context, date string) ([]security.InOutResponse, error) {
				assert.Equal(t, "2026-03-02", date)
				return []security.InOutResponse{{ID: uuid.New().String(), Status: security.StatusOut}}, nil
			},
		}

		h := security.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/security/currently-out?date=2026-03-02", nil)

		h.CurrentlyOut(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
