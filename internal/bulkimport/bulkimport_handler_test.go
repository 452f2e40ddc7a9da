package bulkimport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"go-payslip/internal/bulkimport"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"
	bulkimportMock "go-payslip/internal/bulkimport/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeBulkImportService struct {
	OpenFn          func(ctx context.Context, companyID string, req bulkimport.OpenSessionRequest) (bulkimport.SessionResponse, error)
	GetFn           func(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error)
	UploadFn        func(ctx context.Context, companyID, id string, files []bulkimport.File) (bulkimport.SessionResponse, error)
	UpdateMappingFn func(ctx context.Context, companyID, id string, req bulkimport.UpdateMappingRequest) (bulkimport.SessionResponse, error)
	ValidateFn      func(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error)
	BackFn          func(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error)
	CommitFn        func(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error)
	CloseFn         func(ctx context.Context, companyID, id string) error
}

func (f *fakeBulkImportService) Open(ctx context.Context, companyID string, req bulkimport.OpenSessionRequest) (bulkimport.SessionResponse, error) {
	return f.OpenFn(ctx, companyID, req)
}
func (f *fakeBulkImportService) Get(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error) {
	return f.GetFn(ctx, companyID, id)
}
func (f *fakeBulkImportService) Upload(ctx context.Context, companyID, id string, files []bulkimport.File) (bulkimport.SessionResponse, error) {
	return f.UploadFn(ctx, companyID, id, files)
}
func (f *fakeBulkImportService) UpdateMapping(ctx context.Context, companyID, id string, req bulkimport.UpdateMappingRequest) (bulkimport.SessionResponse, error) {
	return f.UpdateMappingFn(ctx, companyID, id, req)
}
func (f *fakeBulkImportService) Validate(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error) {
	return f.ValidateFn(ctx, companyID, id)
}
func (f *fakeBulkImportService) Back(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error) {
	return f.BackFn(ctx, companyID, id)
}
func (f *fakeBulkImportService) Commit(ctx context.Context, companyID, id string) (bulkimport.SessionResponse, error) {
	return f.CommitFn(ctx, companyID, id)
}
func (f *fakeBulkImportService) Close(ctx context.Context, companyID, id string) error {
	return f.CloseFn(ctx, companyID, id)
}

func newTestContext(method, target string, body *bytes.Buffer, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.Request = req
	c.Set("company_id", companyID)
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}
	return c, w
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		h.Set("Content-Type", "text/csv")
		part, err := mw.CreatePart(h)
		assert.NoError(t, err)
		_, _ = part.Write([]byte(content))
	}
	assert.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestBulkImportHandler_Open(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeBulkImportService{
			OpenFn: func(_ context.Context, cid string, req bulkimport.OpenSessionRequest) (bulkimport.SessionResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "client", req.Kind)
				return bulkimport.SessionResponse{ID: "sess-1", Kind: req.Kind, Step: bulkimport.StepUpload}, nil
			},
		}
		h := bulkimport.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/imports", bytes.NewBufferString(`{"kind":"client"}`), "application/json")

		h.Open(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"step":"upload"`)
	})

	t.Run("unknown kind is a validation error", func(t *testing.T) {
		h := bulkimport.NewHandler(&fakeBulkImportService{})
		c, w := newTestContext(http.MethodPost, "/api/v1/imports", bytes.NewBufferString(`{"kind":"vendor"}`), "application/json")

		h.Open(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})
}

func TestBulkImportHandler_Upload(t *testing.T) {
	t.Run("passes the file through", func(t *testing.T) {
		svc := &fakeBulkImportService{
			UploadFn: func(_ context.Context, _, id string, files []bulkimport.File) (bulkimport.SessionResponse, error) {
				assert.Equal(t, "sess-1", id)
				assert.Len(t, files, 1)
				assert.Equal(t, "people.csv", files[0].Name)
				assert.Equal(t, "text/csv", files[0].ContentType)
				assert.Equal(t, peopleCSV, string(files[0].Content))
				return bulkimport.SessionResponse{ID: id, Step: bulkimport.StepMapping}, nil
			},
		}
		h := bulkimport.NewHandler(svc)
		body, ct := multipartBody(t, map[string]string{"people.csv": peopleCSV})
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/file", body, ct)

		h.Upload(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"step":"mapping"`)
	})

	t.Run("spreadsheet notice", func(t *testing.T) {
		svc := &fakeBulkImportService{
			UploadFn: func(context.Context, string, string, []bulkimport.File) (bulkimport.SessionResponse, error) {
				return bulkimport.SessionResponse{}, bulkimporterrors.ErrSpreadsheetUnsupported
			},
		}
		h := bulkimport.NewHandler(svc)
		body, ct := multipartBody(t, map[string]string{"people.xlsx": "PK"})
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/file", body, ct)

		h.Upload(c)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.Contains(t, w.Body.String(), "save the sheet as CSV")
	})

	t.Run("file too large", func(t *testing.T) {
		h := bulkimport.NewHandler(&fakeBulkImportService{})
		big := "name,email\n" + strings.Repeat("a,a@x.com\n", (5<<20)/10+1)
		body, ct := multipartBody(t, map[string]string{"people.csv": big})
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/file", body, ct)

		h.Upload(c)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "too large")
	})

	t.Run("not multipart", func(t *testing.T) {
		h := bulkimport.NewHandler(&fakeBulkImportService{})
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/file", bytes.NewBufferString("x"), "text/plain")

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBulkImportHandler_Commit(t *testing.T) {
	t.Run("in progress conflict", func(t *testing.T) {
		svc := &fakeBulkImportService{
			CommitFn: func(context.Context, string, string) (bulkimport.SessionResponse, error) {
				return bulkimport.SessionResponse{}, bulkimporterrors.ErrImportInProgress
			},
		}
		h := bulkimport.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/commit", nil, "")

		h.Commit(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("complete", func(t *testing.T) {
		svc := &fakeBulkImportService{
			CommitFn: func(context.Context, string, string) (bulkimport.SessionResponse, error) {
				return bulkimport.SessionResponse{
					Step:   bulkimport.StepComplete,
					Result: &bulkimport.ResultSummary{Success: 2, Errors: []string{}},
				}, nil
			},
		}
		h := bulkimport.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/api/v1/imports/sess-1/commit", nil, "")

		h.Commit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool                       `json:"ok"`
			Data bulkimport.SessionResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, 2, env.Data.Result.Success)
	})
}

func TestBulkImportHandler_UpdateMapping(t *testing.T) {
	svc := &fakeBulkImportService{
		UpdateMappingFn: func(_ context.Context, _, _ string, req bulkimport.UpdateMappingRequest) (bulkimport.SessionResponse, error) {
			assert.Equal(t, 3, *req.Columns[0].Column)
			assert.Equal(t, "employee_id", req.Columns[0].Target)
			return bulkimport.SessionResponse{Step: bulkimport.StepMapping}, nil
		},
	}
	h := bulkimport.NewHandler(svc)
	body := bytes.NewBufferString(`{"columns":[{"column":3,"target":"employee_id"}]}`)
	c, w := newTestContext(http.MethodPut, "/api/v1/imports/sess-1/mapping", body, "application/json")

	h.UpdateMapping(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkImportHandler_Close(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := bulkimportMock.NewMockService(ctrl)
		svc.EXPECT().Close(gomock.Any(), companyID, "sess-1").Return(nil)

		h := bulkimport.NewHandler(svc)
		c, w := newTestContext(http.MethodDelete, "/api/v1/imports/sess-1", nil, "")

		h.Close(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"closed":true`)
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := bulkimportMock.NewMockService(ctrl)
		svc.EXPECT().Close(gomock.Any(), companyID, "sess-1").Return(bulkimporterrors.ErrSessionNotFound)

		h := bulkimport.NewHandler(svc)
		c, w := newTestContext(http.MethodDelete, "/api/v1/imports/sess-1", nil, "")

		h.Close(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
