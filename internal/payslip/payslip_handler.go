package payslip

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	paysliperrors "go-payslip/internal/payslip/errors"
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
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payslip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Sample(c *gin.Context) {
	data, err := SampleBatchJSON()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": SampleFileName}))
	c.Data(http.StatusOK, jsonContentType, data)
}

func (h *Handler) Currencies(c *gin.Context) {
	response.Success(c, http.StatusOK, SupportedCurrencies(), nil)
}

func (h *Handler) PreviewBatch(c *gin.Context) {
	raw, err := readBatch(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateBatch(c *gin.Context) {
	raw, err := readBatch(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.CreateBatch(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req SingleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.Wrap(
			err,
			paysliperrors.ErrInvalidBatchJSON.Code,
			paysliperrors.ErrInvalidBatchJSON.Message,
			paysliperrors.ErrInvalidBatchJSON.HTTPStatus,
		))
		return
	}

	resp, err := h.service.CreateSingle(c.Request.Context(), c.GetString("company_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListPayslipsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	start, end := response.Paginate(len(resp), page, pageSize)

	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PDF(c *gin.Context) {
	doc, err := h.service.RenderPDF(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	disposition := "inline"
	if download, _ := strconv.ParseBool(c.Query("download")); download {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": doc.FileName}))
	c.Data(http.StatusOK, pdfContentType, doc.Content)
}

func (h *Handler) Download(c *gin.Context) {
	url, err := h.service.DownloadURL(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// readBatch takes the batch either as a multipart "file" upload or as the
// raw request body.
func readBatch(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBatchBytes)

	var src io.Reader = c.Request.Body
	if mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type")); mediaType == "multipart/form-data" {
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return nil, batchReadError(err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, batchReadError(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, paysliperrors.ErrBatchFileRequired
	}
	return raw, nil
}

func batchReadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return paysliperrors.ErrBatchTooLarge
	}
	return paysliperrors.ErrBatchFileRequired
}
