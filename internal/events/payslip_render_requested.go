package events

import "time"

const (
	PayslipRenderRequestedTopic = "payroll.payslip.render.requested.v1"
	PayslipRenderRequestedType  = "payslip.render.requested"
)

type PayslipRenderRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayslipID   string    `json:"payslip_id"`
	CompanyID   string    `json:"company_id"`
	BatchID     string    `json:"batch_id,omitempty"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
