package bulkimport

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	bulkimporterrors "go-payslip/internal/bulkimport/errors"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const uploadField = "file"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bulkimport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("bulk import request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Open(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Open(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		h.writeServiceError(c, uploadReadError(err, bulkimporterrors.ErrSingleFileRequired))
		return
	}

	headers := form.File[uploadField]
	files := make([]File, 0, len(headers))
	for _, fh := range headers {
		f, err := readUpload(fh)
		if err != nil {
			h.logger.Warn("http bulk import read upload failed", zap.String("file", fh.Filename), zap.Error(err))
			h.writeServiceError(c, uploadReadError(err, bulkimporterrors.ErrFileUnreadable))
			return
		}
		files = append(files, f)
	}

	resp, err := h.service.Upload(c.Request.Context(), c.GetString("company_id"), c.Param("id"), files)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func readUpload(fh *multipart.FileHeader) (File, error) {
	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func uploadReadError(err, fallback error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return bulkimporterrors.ErrFileTooLarge
	}
	return fallback
}

func (h *Handler) UpdateMapping(c *gin.Context) {
	var req UpdateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateMapping(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Validate(c *gin.Context) {
	resp, err := h.service.Validate(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Back(c *gin.Context) {
	resp, err := h.service.Back(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Commit(c *gin.Context) {
	companyID := c.GetString("company_id")
	id := c.Param("id")
	h.logger.Debug("http bulk import commit", zap.String("company_id", companyID), zap.String("session_id", id))

	resp, err := h.service.Commit(c.Request.Context(), companyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true}, nil)
}
