package person

type ListPeopleRequest struct {
	Kind string `form:"kind" binding:"required,oneof=employee client firm"`
}

type PersonResponse struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  string            `json:"created_at"`
}

// ImportResult reports a per-row import. Success counts stored rows; Errors
// has one line per row that could not be stored.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}
