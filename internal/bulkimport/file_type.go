package bulkimport

import (
	"mime"
	"path/filepath"
	"strings"

	bulkimporterrors "go-payslip/internal/bulkimport/errors"
)

var spreadsheetMediaTypes = map[string]bool{
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// File is one uploaded file as received from the client.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// CheckFileType accepts .csv by extension first, since browsers on some
// platforms label csv as application/vnd.ms-excel.
func CheckFileType(name, contentType string) error {
	ext := strings.ToLower(filepath.Ext(name))
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}

	switch {
	case ext == ".csv":
		return nil
	case ext == ".xlsx" || ext == ".xls" || spreadsheetMediaTypes[mediaType]:
		return bulkimporterrors.ErrSpreadsheetUnsupported
	case mediaType == "text/csv":
		return nil
	default:
		return bulkimporterrors.ErrInvalidFileType
	}
}
