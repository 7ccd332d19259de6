package vld

// FieldResult records the outcome of validating one declared object field in
// lenient mode.
type FieldResult struct {
	// Name is the declared field name.
	Name string
	// Input is the raw value found for the field, nil when absent.
	Input any
	// Value is the validated value on success, or the field schema's
	// type-appropriate zero (or declared default) on failure.
	Value any
	// Issues is nil when the field validated cleanly.
	Issues Issues
}

// Valid reports whether the field validated without issues.
func (f FieldResult) Valid() bool { return len(f.Issues) == 0 }

// ParseResult is the outcome of a lenient object parse: every declared field
// evaluated independently, per-field results retained side by side with the
// aggregate value.
type ParseResult struct {
	fields []FieldResult
	byName map[string]int
	value  map[string]any
}

// NewParseResult assembles a ParseResult from per-field outcomes. The fields
// slice keeps declaration order.
func NewParseResult(fields []FieldResult, value map[string]any) *ParseResult {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[f.Name] = i
	}
	return &ParseResult{fields: fields, byName: byName, value: value}
}

// Fields returns the per-field outcomes in declaration order.
func (r *ParseResult) Fields() []FieldResult { return r.fields }

// Field looks up a single field outcome by name.
func (r *ParseResult) Field(name string) (FieldResult, bool) {
	i, ok := r.byName[name]
	if !ok {
		return FieldResult{}, false
	}
	return r.fields[i], true
}

// Value returns the aggregate object: validated values for passing fields,
// zeros or defaults for failing ones.
func (r *ParseResult) Value() map[string]any { return r.value }

// ValidFields returns the outcomes that validated cleanly.
func (r *ParseResult) ValidFields() []FieldResult {
	var out []FieldResult
	for _, f := range r.fields {
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// ErrorFields returns the outcomes that produced issues.
func (r *ParseResult) ErrorFields() []FieldResult {
	var out []FieldResult
	for _, f := range r.fields {
		if !f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// IsValid reports whether every field validated.
func (r *ParseResult) IsValid() bool { return r.ErrorCount() == 0 }

// HasErrors reports whether any field failed.
func (r *ParseResult) HasErrors() bool { return r.ErrorCount() > 0 }

// ValidCount returns the number of passing fields.
func (r *ParseResult) ValidCount() int { return len(r.fields) - r.ErrorCount() }

// ErrorCount returns the number of failing fields.
func (r *ParseResult) ErrorCount() int {
	n := 0
	for _, f := range r.fields {
		if !f.Valid() {
			n++
		}
	}
	return n
}

// AllIssues concatenates every field's issues, each already prefixed with its
// field path.
func (r *ParseResult) AllIssues() Issues {
	var out Issues
	for _, f := range r.fields {
		out = append(out, f.Issues...)
	}
	return out
}
