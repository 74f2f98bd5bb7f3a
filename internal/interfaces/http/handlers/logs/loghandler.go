package logs

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/application/logs/usecases"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

// maxLogFileSize caps multipart log uploads at 5 MiB.
const maxLogFileSize = 5 << 20

type LogHandler struct {
	uploadLogUC *usecases.UploadLogUseCase
	getLogUC    *usecases.GetLogUseCase
	listLogsUC  *usecases.ListLogsUseCase
	logger      logger.Interface
}

func NewLogHandler(
	uploadLogUC *usecases.UploadLogUseCase,
	getLogUC *usecases.GetLogUseCase,
	listLogsUC *usecases.ListLogsUseCase,
	logger logger.Interface,
) *LogHandler {
	return &LogHandler{
		uploadLogUC: uploadLogUC,
		getLogUC:    getLogUC,
		listLogsUC:  listLogsUC,
		logger:      logger,
	}
}

// UploadLog handles POST /api/logs. The body is either a multipart form with
// a logFile part or a JSON document with inline content.
func (h *LogHandler) UploadLog(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	cmd, err := h.parseUpload(c, actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uploadLogUC.Execute(c.Request.Context(), *cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, logResponseFrom(result), "Log uploaded successfully")
}

func (h *LogHandler) parseUpload(c *gin.Context, actor authorization.Actor) (*usecases.UploadLogCommand, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.parseMultipartUpload(c, actor)
	}

	var req UploadLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, utils.BindingErrorToAppError(err)
	}

	return &usecases.UploadLogCommand{
		Actor:    actor,
		Name:     req.Name,
		Content:  req.Content,
		SystemID: req.SystemID,
	}, nil
}

func (h *LogHandler) parseMultipartUpload(c *gin.Context, actor authorization.Actor) (*usecases.UploadLogCommand, error) {
	fileHeader, err := c.FormFile("logFile")
	if err != nil {
		return nil, errors.NewValidationError("logFile is required")
	}
	if fileHeader.Size > maxLogFileSize {
		return nil, errors.NewValidationError("log file exceeds the 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded log file", "filename", fileHeader.Filename, "error", err)
		return nil, errors.NewInternalError("failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxLogFileSize))
	if err != nil {
		h.logger.Errorw("failed to read uploaded log file", "filename", fileHeader.Filename, "error", err)
		return nil, errors.NewInternalError("failed to read uploaded file")
	}

	return &usecases.UploadLogCommand{
		Actor:    actor,
		Name:     fileHeader.Filename,
		Content:  string(content),
		SystemID: c.PostForm("systemId"),
	}, nil
}

// GetLog handles GET /api/logs/:id
func (h *LogHandler) GetLog(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	logID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getLogUC.Execute(c.Request.Context(), usecases.GetLogQuery{
		Actor: actor,
		LogID: logID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", logResponseFrom(result))
}

// ListLogs handles GET /api/logs
func (h *LogHandler) ListLogs(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	results, err := h.listLogsUC.Execute(c.Request.Context(), usecases.ListLogsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", logResponsesFrom(results))
}
