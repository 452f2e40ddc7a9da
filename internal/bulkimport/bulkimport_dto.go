package bulkimport

import "time"

// RowLimitHint is advisory; larger files are still accepted.
const RowLimitHint = 1000

const (
	previewSampleRows = 5
	maxUploadBytes    = 5 << 20
)

type OpenSessionRequest struct {
	Kind string `json:"kind" binding:"required,oneof=employee client firm"`
}

type ColumnTargetRequest struct {
	Column *int   `json:"column" binding:"required,min=0"`
	Target string `json:"target"`
}

type UpdateMappingRequest struct {
	Columns []ColumnTargetRequest `json:"columns" binding:"required,min=1,dive"`
}

type FieldsResponse struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

type PreviewResponse struct {
	Total   int         `json:"total"`
	Valid   int         `json:"valid"`
	Invalid int         `json:"invalid"`
	Rows    []ParsedRow `json:"rows"`
}

type SessionResponse struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	Step       Step             `json:"step"`
	Fields     FieldsResponse   `json:"fields"`
	FileName   string           `json:"file_name,omitempty"`
	Headers    []string         `json:"headers,omitempty"`
	SampleRows [][]string       `json:"sample_rows,omitempty"`
	TotalRows  int              `json:"total_rows,omitempty"`
	Mapping    []ColumnMapping  `json:"mapping,omitempty"`
	Preview    *PreviewResponse `json:"preview,omitempty"`
	Submitted  int              `json:"submitted,omitempty"`
	Result     *ResultSummary   `json:"result,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}
