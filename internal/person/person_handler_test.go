package person_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payslip/internal/person"
	personerrors "go-payslip/internal/person/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePersonService struct {
	ImportRowsFn func(ctx context.Context, companyID string, kind person.Kind, rows []map[string]string) (person.ImportResult, error)
	ListFn       func(ctx context.Context, companyID string, kind person.Kind) ([]person.PersonResponse, error)
}

func (f *fakePersonService) ImportRows(ctx context.Context, companyID string, kind person.Kind, rows []map[string]string) (person.ImportResult, error) {
	return f.ImportRowsFn(ctx, companyID, kind, rows)
}
func (f *fakePersonService) List(ctx context.Context, companyID string, kind person.Kind) ([]person.PersonResponse, error) {
	return f.ListFn(ctx, companyID, kind)
}

func TestPersonHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paginated", func(t *testing.T) {
		svc := &fakePersonService{
			ListFn: func(_ context.Context, cid string, kind person.Kind) ([]person.PersonResponse, error) {
				assert.Equal(t, "company-1", cid)
				assert.Equal(t, person.KindEmployee, kind)
				return []person.PersonResponse{{Name: "A"}, {Name: "B"}, {Name: "C"}}, nil
			},
		}
		h := person.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/people?kind=employee&page=2&page_size=2", nil)
		c.Set("company_id", "company-1")

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"C"`)
		assert.NotContains(t, w.Body.String(), `"name":"A"`)
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
	})

	t.Run("kind required", func(t *testing.T) {
		h := person.NewHandler(&fakePersonService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/people", nil)

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakePersonService{
			ListFn: func(context.Context, string, person.Kind) ([]person.PersonResponse, error) {
				return nil, personerrors.ErrStoreUnavailable
			},
		}
		h := person.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/people?kind=firm", nil)

		h.List(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
