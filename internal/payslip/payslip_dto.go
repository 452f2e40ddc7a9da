package payslip

import "time"

const (
	SampleFileName  = "payslip-sample.json"
	maxBatchBytes   = 5 << 20
	pdfContentType  = "application/pdf"
	jsonContentType = "application/json"
)

type ListPayslipsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BatchPreviewResponse is a generated batch that was not stored.
type BatchPreviewResponse struct {
	Count    int       `json:"count"`
	Payslips []Payslip `json:"payslips"`
}

type BatchCreatedResponse struct {
	BatchID  string            `json:"batchId"`
	Count    int               `json:"count"`
	Payslips []PayslipResponse `json:"payslips"`
}

type PayslipResponse struct {
	Payslip
	CompanyID      string  `json:"companyId"`
	BatchID        *string `json:"batchId,omitempty"`
	CreatedBy      string  `json:"createdBy"`
	PDFURL         *string `json:"pdfUrl,omitempty"`
	PDFGeneratedAt *string `json:"pdfGeneratedAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// PDFDocument is a rendered payslip ready to be served.
type PDFDocument struct {
	FileName string
	Content  []byte
}

func mapToResponse(r PayslipRecord) PayslipResponse {
	resp := PayslipResponse{
		Payslip:   r.Payslip(),
		CompanyID: r.CompanyID.String(),
		CreatedBy: r.CreatedBy.String(),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		PDFURL:    r.PDFURL,
	}
	if r.BatchID != nil {
		v := r.BatchID.String()
		resp.BatchID = &v
	}
	if r.PDFGeneratedAt != nil {
		v := r.PDFGeneratedAt.Format(time.RFC3339)
		resp.PDFGeneratedAt = &v
	}
	return resp
}

func mapToListResponse(records []PayslipRecord) []PayslipResponse {
	res := make([]PayslipResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res
}
