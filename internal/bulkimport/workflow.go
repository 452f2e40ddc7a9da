package bulkimport

import (
	"context"
	"maps"
	"slices"

	bulkimporterrors "go-payslip/internal/bulkimport/errors"
	"go-payslip/internal/shared/apperror"
)

type Step string

const (
	StepUpload    Step = "upload"
	StepMapping   Step = "mapping"
	StepPreview   Step = "preview"
	StepImporting Step = "importing"
	StepComplete  Step = "complete"
)

// DisplayedErrorLimit caps the itemized errors shown after an import.
const DisplayedErrorLimit = 5

// Schema is the fixed set of target fields for one import kind.
type Schema struct {
	Required []string
	Optional []string
}

func (s Schema) Has(field string) bool {
	return slices.Contains(s.Required, field) || slices.Contains(s.Optional, field)
}

// ImportResult is what the committer reports back. Row level failures are
// listed in Errors and do not fail the import as a whole.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

// Committer persists the valid rows. Only a failure to run at all is
// returned as an error.
type Committer func(ctx context.Context, rows []map[string]string) (ImportResult, error)

// State is one step of the import dialog. Each variant carries only the data
// that exists at that step.
type State interface {
	Step() Step
}

type UploadState struct{}

type MappingState struct {
	FileName string
	Grid     Grid
	Mapping  []ColumnMapping
}

type PreviewState struct {
	MappingState
	Rows []ParsedRow
}

type ImportingState struct {
	PreviewState
}

type CompleteState struct {
	FileName  string
	Submitted int
	Result    ImportResult
}

func (UploadState) Step() Step    { return StepUpload }
func (MappingState) Step() Step   { return StepMapping }
func (PreviewState) Step() Step   { return StepPreview }
func (ImportingState) Step() Step { return StepImporting }
func (CompleteState) Step() Step  { return StepComplete }

// Workflow drives one import dialog from upload to completion.
// It is not safe for concurrent use.
type Workflow struct {
	schema Schema
	state  State
}

func NewWorkflow(schema Schema) *Workflow {
	return &Workflow{schema: schema, state: UploadState{}}
}

// RestoreWorkflow resumes a workflow at a previously saved state.
func RestoreWorkflow(schema Schema, state State) *Workflow {
	if state == nil {
		state = UploadState{}
	}
	return &Workflow{schema: schema, state: state}
}

func (w *Workflow) State() State { return w.state }
func (w *Workflow) Step() Step   { return w.state.Step() }
func (w *Workflow) Schema() Schema {
	return w.schema
}

// Upload accepts exactly one csv file, parses it and proposes a mapping.
// On any rejection the workflow stays at upload.
func (w *Workflow) Upload(files []File) error {
	if _, ok := w.state.(UploadState); !ok {
		return bulkimporterrors.ErrInvalidStep
	}
	if len(files) != 1 {
		return bulkimporterrors.ErrSingleFileRequired
	}

	f := files[0]
	if err := CheckFileType(f.Name, f.ContentType); err != nil {
		return err
	}

	grid, err := ParseDelimited(string(f.Content))
	if err != nil {
		return err
	}

	matches := MatchFields(grid.Header(), w.schema.Required, w.schema.Optional)
	w.state = MappingState{
		FileName: f.Name,
		Grid:     grid,
		Mapping:  MappingFromMatches(matches),
	}
	return nil
}

// SetTarget changes the target of one column. An empty target skips it.
func (w *Workflow) SetTarget(column int, target string) error {
	s, ok := w.state.(MappingState)
	if !ok {
		return bulkimporterrors.ErrInvalidStep
	}
	if column < 0 || column >= len(s.Mapping) {
		return bulkimporterrors.ErrUnknownColumn
	}
	if target != "" && !w.schema.Has(target) {
		return bulkimporterrors.ErrUnknownTargetField
	}

	mapping := slices.Clone(s.Mapping)
	mapping[column].Target = target
	s.Mapping = mapping
	w.state = s
	return nil
}

// Validate applies the mapping to every data row and moves to preview.
func (w *Workflow) Validate() error {
	s, ok := w.state.(MappingState)
	if !ok {
		return bulkimporterrors.ErrInvalidStep
	}

	w.state = PreviewState{
		MappingState: s,
		Rows:         ValidateRows(s.Mapping, s.Grid.DataRows(), w.schema.Required),
	}
	return nil
}

// Back goes from mapping to upload, dropping the file, or from preview to
// mapping, keeping the file and mapping.
func (w *Workflow) Back() error {
	switch s := w.state.(type) {
	case MappingState:
		w.state = UploadState{}
	case PreviewState:
		w.state = s.MappingState
	default:
		return bulkimporterrors.ErrInvalidStep
	}
	return nil
}

// Import submits the valid rows. A committer error puts the workflow back at
// preview; partial success is a normal completion.
func (w *Workflow) Import(ctx context.Context, commit Committer) (ImportResult, error) {
	s, ok := w.state.(PreviewState)
	if !ok {
		return ImportResult{}, bulkimporterrors.ErrInvalidStep
	}

	valid, _ := Partition(s.Rows)
	if len(valid) == 0 {
		return ImportResult{}, bulkimporterrors.ErrNothingToImport
	}

	payload := make([]map[string]string, len(valid))
	for i, r := range valid {
		payload[i] = maps.Clone(r.Values)
	}

	w.state = ImportingState{PreviewState: s}

	result, err := commit(ctx, payload)
	if err != nil {
		w.state = s
		return ImportResult{}, apperror.Wrap(
			err,
			bulkimporterrors.ErrCommitFailed.Code,
			bulkimporterrors.ErrCommitFailed.Message,
			bulkimporterrors.ErrCommitFailed.HTTPStatus,
		)
	}

	w.state = CompleteState{
		FileName:  s.FileName,
		Submitted: len(valid),
		Result:    result,
	}
	return result, nil
}

// Reset discards everything and returns to upload.
// ResumePreview moves an importing workflow whose commit never finished back
// to the preview step.
func (w *Workflow) ResumePreview() error {
	s, ok := w.state.(ImportingState)
	if !ok {
		return bulkimporterrors.ErrInvalidStep
	}
	w.state = s.PreviewState
	return nil
}

func (w *Workflow) Reset() {
	w.state = UploadState{}
}

type ResultSummary struct {
	Success    int      `json:"success"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
	MoreErrors int      `json:"moreErrors"`
}

// Summarize keeps the first limit errors and counts the rest.
func Summarize(result ImportResult, limit int) ResultSummary {
	shown := result.Errors
	if len(shown) > limit {
		shown = shown[:limit]
	}
	return ResultSummary{
		Success:    result.Success,
		Failed:     len(result.Errors),
		Errors:     slices.Clone(shown),
		MoreErrors: len(result.Errors) - len(shown),
	}
}
