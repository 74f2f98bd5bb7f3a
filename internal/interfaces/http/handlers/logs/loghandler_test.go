package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/application/logs/usecases"
	"github.com/Menatic/IT-Support/internal/infrastructure/repository/memory"
	"github.com/Menatic/IT-Support/internal/interfaces/http/handlers/testutil"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type stubGateway struct {
	analysis string
	err      error
}

func (g *stubGateway) AnalyzeLog(ctx context.Context, logContent string) (string, error) {
	return g.analysis, g.err
}

func (g *stubGateway) ChatReply(ctx context.Context, userMessage string) (string, error) {
	return "", errors.NewUpstreamError("not used")
}

func (g *stubGateway) Enabled() bool { return g.err == nil }

func newHandler(t *testing.T, gateway *stubGateway) (*LogHandler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := logger.NewNop()
	renderer := markdown.NewMarkdownService()

	return NewLogHandler(
		usecases.NewUploadLogUseCase(store.Logs(), gateway, renderer, log),
		usecases.NewGetLogUseCase(store.Logs(), renderer, log),
		usecases.NewListLogsUseCase(store.Logs(), renderer, log),
		log,
	), store
}

func TestUploadLog_JSON(t *testing.T) {
	handler, _ := newHandler(t, &stubGateway{analysis: "Disk pressure detected."})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/logs", map[string]any{
		"name":     "syslog.txt",
		"content":  "disk /dev/sda1 at 97% capacity",
		"systemId": "main-server",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)

	handler.UploadLog(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var logResp LogResponse
	require.NoError(t, json.Unmarshal(resp.Data, &logResp))
	require.NotNil(t, logResp.Analysis)
	assert.Equal(t, "Disk pressure detected.", *logResp.Analysis)
	assert.Equal(t, "main-server", logResp.SystemID)
}

func TestUploadLog_AnalysisFailureStillCreated(t *testing.T) {
	handler, store := newHandler(t, &stubGateway{err: errors.NewUpstreamError("provider down")})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/logs", map[string]any{
		"name":    "app.log",
		"content": "panic: runtime error",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)

	handler.UploadLog(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var logResp LogResponse
	require.NoError(t, json.Unmarshal(resp.Data, &logResp))
	assert.Nil(t, logResp.Analysis)

	stored, err := store.Logs().GetByID(context.Background(), logResp.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Analysis())
}

func TestUploadLog_Multipart(t *testing.T) {
	handler, _ := newHandler(t, &stubGateway{analysis: "Looks fine."})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logFile", "kernel.log")
	require.NoError(t, err)
	_, err = part.Write([]byte("kernel: usb 1-1 device descriptor read error"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("systemId", "web-server"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/logs", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)

	handler.UploadLog(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var logResp LogResponse
	require.NoError(t, json.Unmarshal(resp.Data, &logResp))
	assert.Equal(t, "kernel.log", logResp.Name)
	assert.Equal(t, "web-server", logResp.SystemID)
}

func TestGetLog_EmployeeScoping(t *testing.T) {
	handler, _ := newHandler(t, &stubGateway{analysis: "ok"})

	c, _ := testutil.NewTestContext(http.MethodPost, "/api/logs", map[string]any{
		"name":    "auth.log",
		"content": "failed login from 10.0.0.8",
	})
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)
	handler.UploadLog(c)

	c2, w2 := testutil.NewTestContext(http.MethodGet, "/api/logs/1", nil)
	testutil.SetAuthContext(c2, 9, authorization.RoleEmployee)
	testutil.SetURLParam(c2, "id", "1")

	handler.GetLog(c2)
	assert.Equal(t, http.StatusForbidden, w2.Code)

	c3, w3 := testutil.NewTestContext(http.MethodGet, "/api/logs/1", nil)
	testutil.SetAuthContext(c3, 2, authorization.RoleAgent)
	testutil.SetURLParam(c3, "id", "1")

	handler.GetLog(c3)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func TestListLogs_EmployeeSeesOwnOnly(t *testing.T) {
	handler, _ := newHandler(t, &stubGateway{analysis: "ok"})

	for _, userID := range []uint{4, 5} {
		c, _ := testutil.NewTestContext(http.MethodPost, "/api/logs", map[string]any{
			"name":    "app.log",
			"content": "entry",
		})
		testutil.SetAuthContext(c, userID, authorization.RoleEmployee)
		handler.UploadLog(c)
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/logs", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleEmployee)
	handler.ListLogs(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var logsResp []LogResponse
	require.NoError(t, json.Unmarshal(resp.Data, &logsResp))
	require.Len(t, logsResp, 1)
	assert.Equal(t, uint(4), logsResp[0].UserID)
}
