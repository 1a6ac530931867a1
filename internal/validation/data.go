package validation

// Data is the bag of sanitized values that passed validation.
type Data map[string]any

// String returns a sanitized string field.
func (d Data) String(field string) (string, bool) {
	s, ok := d[field].(string)
	return s, ok
}

// Int returns a field that was coerced to an integer.
func (d Data) Int(field string) (int, bool) {
	n, ok := d[field].(int)
	return n, ok
}

// StringPtr returns a pointer to a string field, or nil when it is absent.
func (d Data) StringPtr(field string) *string {
	s, ok := d.String(field)
	if !ok {
		return nil
	}
	return &s
}

// IntPtr returns a pointer to an integer field, or nil when it is absent.
func (d Data) IntPtr(field string) *int {
	n, ok := d.Int(field)
	if !ok {
		return nil
	}
	return &n
}
