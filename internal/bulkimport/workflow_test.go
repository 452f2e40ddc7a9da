package bulkimport_test

import (
	"context"
	"errors"
	"testing"

	"go-payslip/internal/bulkimport"
	bulkimporterrors "go-payslip/internal/bulkimport/errors"

	"github.com/stretchr/testify/assert"
)

var employeeSchema = bulkimport.Schema{
	Required: []string{"name", "email"},
	Optional: []string{"phone", "department", "designation", "employee_id", "joining_date"},
}

const peopleCSV = "Full Name,Email,Dept,Salary\n" +
	"Alice,alice@x.com,Eng,100\n" +
	",bob@x.com,Ops,200\n" +
	"Carol,carol@x.com,Eng,300\n"

func csvFile(content string) []bulkimport.File {
	return []bulkimport.File{{Name: "people.csv", ContentType: "text/csv", Content: []byte(content)}}
}

func toPreview(t *testing.T) *bulkimport.Workflow {
	t.Helper()
	w := bulkimport.NewWorkflow(employeeSchema)
	assert.NoError(t, w.Upload(csvFile(peopleCSV)))
	assert.NoError(t, w.Validate())
	return w
}

func TestWorkflow_Upload(t *testing.T) {
	t.Run("csv moves to mapping with proposed targets", func(t *testing.T) {
		w := bulkimport.NewWorkflow(employeeSchema)

		err := w.Upload(csvFile(peopleCSV))

		assert.NoError(t, err)
		st, ok := w.State().(bulkimport.MappingState)
		assert.True(t, ok)
		assert.Equal(t, "people.csv", st.FileName)
		assert.Equal(t, []bulkimport.ColumnMapping{
			{Source: "Full Name", Target: "name"},
			{Source: "Email", Target: "email"},
			{Source: "Dept", Target: "department"},
			{Source: "Salary", Target: ""},
		}, st.Mapping)
	})

	rejections := []struct {
		name  string
		files []bulkimport.File
		want  error
	}{
		{"xlsx", []bulkimport.File{{Name: "people.xlsx", Content: []byte("PK")}}, bulkimporterrors.ErrSpreadsheetUnsupported},
		{"pdf", []bulkimport.File{{Name: "people.pdf", ContentType: "application/pdf"}}, bulkimporterrors.ErrInvalidFileType},
		{"no file", nil, bulkimporterrors.ErrSingleFileRequired},
		{"two files", append(csvFile(peopleCSV), csvFile(peopleCSV)...), bulkimporterrors.ErrSingleFileRequired},
		{"header only", csvFile("name,email\n"), bulkimporterrors.ErrNotEnoughRows},
	}
	for _, tt := range rejections {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			w := bulkimport.NewWorkflow(employeeSchema)

			err := w.Upload(tt.files)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, bulkimport.StepUpload, w.Step())
		})
	}

	t.Run("not allowed after upload", func(t *testing.T) {
		w := bulkimport.NewWorkflow(employeeSchema)
		assert.NoError(t, w.Upload(csvFile(peopleCSV)))

		err := w.Upload(csvFile(peopleCSV))
		assert.ErrorIs(t, err, bulkimporterrors.ErrInvalidStep)
	})
}

func TestWorkflow_SetTarget(t *testing.T) {
	w := bulkimport.NewWorkflow(employeeSchema)
	assert.NoError(t, w.Upload(csvFile(peopleCSV)))
	before := w.State().(bulkimport.MappingState)

	assert.NoError(t, w.SetTarget(3, "employee_id"))
	assert.NoError(t, w.SetTarget(2, ""))
	assert.ErrorIs(t, w.SetTarget(9, "phone"), bulkimporterrors.ErrUnknownColumn)
	assert.ErrorIs(t, w.SetTarget(0, "salary"), bulkimporterrors.ErrUnknownTargetField)

	after := w.State().(bulkimport.MappingState)
	assert.Equal(t, "employee_id", after.Mapping[3].Target)
	assert.Equal(t, "", after.Mapping[2].Target)
	assert.Equal(t, "department", before.Mapping[2].Target, "earlier state is not mutated")
}

func TestWorkflow_ValidateAndBack(t *testing.T) {
	w := toPreview(t)

	st, ok := w.State().(bulkimport.PreviewState)
	assert.True(t, ok)
	valid, invalid := bulkimport.Partition(st.Rows)
	assert.Len(t, valid, 2)
	assert.Len(t, invalid, 1)

	assert.NoError(t, w.Back())
	mapping, ok := w.State().(bulkimport.MappingState)
	assert.True(t, ok, "preview goes back to mapping")
	assert.Equal(t, "people.csv", mapping.FileName)
	assert.Equal(t, "department", mapping.Mapping[2].Target)

	assert.NoError(t, w.Back())
	assert.Equal(t, bulkimport.StepUpload, w.Step(), "mapping goes back to upload")

	assert.ErrorIs(t, w.Back(), bulkimporterrors.ErrInvalidStep)
	assert.ErrorIs(t, w.Validate(), bulkimporterrors.ErrInvalidStep)
}

func TestWorkflow_Import(t *testing.T) {
	t.Run("partial success completes", func(t *testing.T) {
		w := toPreview(t)

		var submitted []map[string]string
		var stepDuringCommit bulkimport.Step
		result, err := w.Import(context.Background(), func(_ context.Context, rows []map[string]string) (bulkimport.ImportResult, error) {
			submitted = rows
			stepDuringCommit = w.Step()
			return bulkimport.ImportResult{Success: 1, Errors: []string{"Row 2 (carol@x.com): already exists"}}, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Success)
		assert.Equal(t, bulkimport.StepImporting, stepDuringCommit)
		assert.Len(t, submitted, 2)
		assert.Equal(t, "alice@x.com", submitted[0]["email"])
		assert.Equal(t, "carol@x.com", submitted[1]["email"])

		done, ok := w.State().(bulkimport.CompleteState)
		assert.True(t, ok)
		assert.Equal(t, 2, done.Submitted)
	})

	t.Run("committer failure returns to preview", func(t *testing.T) {
		w := toPreview(t)

		_, err := w.Import(context.Background(), func(context.Context, []map[string]string) (bulkimport.ImportResult, error) {
			return bulkimport.ImportResult{}, errors.New("connection refused")
		})

		assert.ErrorIs(t, err, bulkimporterrors.ErrCommitFailed)
		assert.Equal(t, bulkimport.StepPreview, w.Step())
	})

	t.Run("no valid rows", func(t *testing.T) {
		w := bulkimport.NewWorkflow(employeeSchema)
		assert.NoError(t, w.Upload(csvFile("name,email\n,a@x.com\nB,bad\n")))
		assert.NoError(t, w.Validate())

		called := false
		_, err := w.Import(context.Background(), func(context.Context, []map[string]string) (bulkimport.ImportResult, error) {
			called = true
			return bulkimport.ImportResult{}, nil
		})

		assert.ErrorIs(t, err, bulkimporterrors.ErrNothingToImport)
		assert.False(t, called)
		assert.Equal(t, bulkimport.StepPreview, w.Step())
	})

	t.Run("only from preview", func(t *testing.T) {
		w := bulkimport.NewWorkflow(employeeSchema)
		_, err := w.Import(context.Background(), nil)
		assert.ErrorIs(t, err, bulkimporterrors.ErrInvalidStep)
	})
}

func TestWorkflow_ResumePreview(t *testing.T) {
	preview := toPreview(t).State().(bulkimport.PreviewState)
	w := bulkimport.RestoreWorkflow(employeeSchema, bulkimport.ImportingState{PreviewState: preview})

	assert.NoError(t, w.ResumePreview())
	assert.Equal(t, preview, w.State())

	assert.ErrorIs(t, w.ResumePreview(), bulkimporterrors.ErrInvalidStep)
}

func TestWorkflow_Reset(t *testing.T) {
	w := toPreview(t)
	w.Reset()
	assert.Equal(t, bulkimport.StepUpload, w.Step())
	assert.Equal(t, bulkimport.UploadState{}, w.State())
}

func TestSummarize(t *testing.T) {
	errs := []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7"}

	got := bulkimport.Summarize(bulkimport.ImportResult{Success: 3, Errors: errs}, bulkimport.DisplayedErrorLimit)

	assert.Equal(t, 3, got.Success)
	assert.Equal(t, 7, got.Failed)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5"}, got.Errors)
	assert.Equal(t, 2, got.MoreErrors)

	few := bulkimport.Summarize(bulkimport.ImportResult{Errors: []string{"e1"}}, bulkimport.DisplayedErrorLimit)
	assert.Equal(t, 0, few.MoreErrors)
	assert.Equal(t, []string{"e1"}, few.Errors)
}
