package validation

// Validator checks a struct against its validate tags. The returned map is
// keyed by json field name and is empty when the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
