// Package schema checks generic JSON values against flat record schemas.
package schema

// Kind is the expected type of a record field.
type Kind int

const (
	Integer Kind = iota + 1
	String
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Matches reports whether v is a value of kind k. Integers must be int64 as
// produced by the loader; floats, numeric strings and 0/1 never stand in for
// another kind.
func (k Kind) Matches(v any) bool {
	switch k {
	case Integer:
		_, ok := v.(int64)
		return ok
	case String:
		_, ok := v.(string)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}

// Field is one named, typed entry of a Schema.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the exact field set of a record: every field must be present
// with its kind and no other fields are allowed.
type Schema []Field

// Valid reports whether value is a mapping that matches s exactly.
func (s Schema) Valid(value any) bool {
	record, ok := value.(map[string]any)
	if !ok || len(record) != len(s) {
		return false
	}
	for _, f := range s {
		v, present := record[f.Name]
		if !present || !f.Kind.Matches(v) {
			return false
		}
	}
	return true
}

// ValidList reports whether value is an array whose every element matches s.
// An empty array is valid.
func (s Schema) ValidList(value any) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if !s.Valid(item) {
			return false
		}
	}
	return true
}

// Company is the schema of a companies.json entry.
var Company = Schema{
	{Name: "id", Kind: Integer},
	{Name: "name", Kind: String},
	{Name: "top_up", Kind: Integer},
	{Name: "email_status", Kind: Boolean},
}

// User is the schema of a users.json entry.
var User = Schema{
	{Name: "id", Kind: Integer},
	{Name: "first_name", Kind: String},
	{Name: "last_name", Kind: String},
	{Name: "email", Kind: String},
	{Name: "company_id", Kind: Integer},
	{Name: "email_status", Kind: Boolean},
	{Name: "active_status", Kind: Boolean},
	{Name: "tokens", Kind: Integer},
}

// ValidUsers reports whether value is a list of user records.
func ValidUsers(value any) bool {
	return User.ValidList(value)
}

// ValidCompanies reports whether value is a list of company records.
func ValidCompanies(value any) bool {
	return Company.ValidList(value)
}
