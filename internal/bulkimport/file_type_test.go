package bulkimport_test

import (
	"testing"

	"go-payslip/internal/bulkimport"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"

	"github.com/stretchr/testify/assert"
)

func TestCheckFileType(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
		want        error
	}{
		{"csv extension", "people.csv", "text/csv", nil},
		{"csv extension upper case", "PEOPLE.CSV", "", nil},
		{"csv labelled as excel", "people.csv", "application/vnd.ms-excel", nil},
		{"csv media type only", "export", "text/csv; charset=utf-8", nil},
		{"xlsx", "people.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", bulkimporterrors.ErrSpreadsheetUnsupported},
		{"xls", "people.xls", "", bulkimporterrors.ErrSpreadsheetUnsupported},
		{"excel media type", "export", "application/vnd.ms-excel", bulkimporterrors.ErrSpreadsheetUnsupported},
		{"pdf", "people.pdf", "application/pdf", bulkimporterrors.ErrInvalidFileType},
		{"no hints", "people", "", bulkimporterrors.ErrInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bulkimport.CheckFileType(tt.file, tt.contentType)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
