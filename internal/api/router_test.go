package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_archiver/internal/domain"
)

type fakeArchiver struct {
	stats *domain.TransferStats
	err   error

	calls   int
	gotID   int64
	gotUser string
	ctxErr  error
}

func (f *fakeArchiver) ArchivePage(ctx context.Context, id int64, actor string) (*domain.TransferStats, error) {
	f.calls++
	f.ctxErr = ctx.Err()
	f.gotID = id
	f.gotUser = actor
	return f.stats, f.err
}

func newTestEngine(archiver PageArchiver, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(archiver, gatherer, logger).Engine()
}

func doRequest(engine *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestDeletePage_Success(t *testing.T) {
	archiver := &fakeArchiver{stats: &domain.TransferStats{
		Kind:      domain.KindPage,
		Reason:    domain.ReasonDeleted,
		Requested: 1,
		Archived:  1,
		Removed:   1,
		Notified:  1,
		Duration:  12 * time.Millisecond,
	}}
	engine := newTestEngine(archiver, nil)

	rec := doRequest(engine, http.MethodDelete, "/api/v1/pages/42", http.Header{"X-Actor": {"editor@cms"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), archiver.gotID)
	assert.Equal(t, "editor@cms", archiver.gotUser)

	var body transferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "page", body.Kind)
	assert.Equal(t, "Deleted", body.Reason)
	assert.Equal(t, 1, body.Archived)
	assert.Equal(t, int64(1), body.Removed)
	assert.Equal(t, int64(12), body.DurationMS)
	assert.Nil(t, body.DeleteError)
}

func TestDeletePage_DefaultActor(t *testing.T) {
	archiver := &fakeArchiver{stats: &domain.TransferStats{Kind: domain.KindPage}}
	engine := newTestEngine(archiver, nil)

	rec := doRequest(engine, http.MethodDelete, "/api/v1/pages/7", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultActor, archiver.gotUser)
}

func TestDeletePage_ClientDisconnectDoesNotCancelTransfer(t *testing.T) {
	archiver := &fakeArchiver{stats: &domain.TransferStats{Kind: domain.KindPage}}
	engine := newTestEngine(archiver, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/pages/4", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, 1, archiver.calls)
	assert.NoError(t, archiver.ctxErr)
}

func TestDeletePage_ReportsLiveDeleteFailure(t *testing.T) {
	archiver := &fakeArchiver{stats: &domain.TransferStats{
		Kind:      domain.KindPage,
		Reason:    domain.ReasonDeleted,
		Archived:  1,
		DeleteErr: fmt.Errorf("%w: connection reset", domain.ErrLiveDelete),
	}}
	engine := newTestEngine(archiver, nil)

	rec := doRequest(engine, http.MethodDelete, "/api/v1/pages/3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body transferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.DeleteError)
	assert.Contains(t, *body.DeleteError, "connection reset")
	assert.Equal(t, int64(0), body.Removed)
}

func TestDeletePage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "non numeric id",
			path:       "/api/v1/pages/abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			path:       "/api/v1/pages/0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page not found",
			path:       "/api/v1/pages/9",
			err:        fmt.Errorf("get page 9: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
		{
			name:       "archive write failed",
			path:       "/api/v1/pages/9",
			err:        fmt.Errorf("%w: insert archived page records: boom", domain.ErrArchiveWrite),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		{
			name:       "unexpected failure",
			path:       "/api/v1/pages/9",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archiver := &fakeArchiver{err: tt.err}
			engine := newTestEngine(archiver, nil)

			rec := doRequest(engine, http.MethodDelete, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, archiver.calls)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(&fakeArchiver{}, nil)

	rec := doRequest(engine, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_requests_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	t.Run("registered with gatherer", func(t *testing.T) {
		rec := doRequest(newTestEngine(&fakeArchiver{}, reg), http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test_requests_total 1")
	})

	t.Run("absent without gatherer", func(t *testing.T) {
		rec := doRequest(newTestEngine(&fakeArchiver{}, nil), http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
