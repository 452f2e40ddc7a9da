package person

import "slices"

type Kind string

const (
	KindEmployee Kind = "employee"
	KindClient   Kind = "client"
	KindFirm     Kind = "firm"
)

// Fields lists the target fields a kind accepts from an import file.
type Fields struct {
	Required []string
	Optional []string
}

var kindFields = map[Kind]Fields{
	KindEmployee: {
		Required: []string{"name", "email"},
		Optional: []string{"phone", "department", "designation", "employee_id", "joining_date"},
	},
	KindClient: {
		Required: []string{"name", "email"},
		Optional: []string{"phone", "company", "address", "city", "country"},
	},
	KindFirm: {
		Required: []string{"name", "email"},
		Optional: []string{"phone", "registration_number", "tax_id", "address", "website"},
	},
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kindFields[k]
	return k, ok
}

// FieldsFor returns copies so callers cannot edit the table.
func FieldsFor(k Kind) (Fields, bool) {
	f, ok := kindFields[k]
	if !ok {
		return Fields{}, false
	}
	return Fields{
		Required: slices.Clone(f.Required),
		Optional: slices.Clone(f.Optional),
	}, true
}
