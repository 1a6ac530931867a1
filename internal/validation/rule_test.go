package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bodyOf decodes a JSON object the same way the HTTP layer does.
func bodyOf(t *testing.T, raw string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	require.NoError(t, dec.Decode(&body))
	return body
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name   string
		step   Step
		in     any
		want   any
		wantOK bool
	}{
		{"trim", Trim(), "  Dune \n", "Dune", true},
		{"escape", Escape(), `<b>"Tom" & 'Jerry'</b>`, "&lt;b&gt;&quot;Tom&quot; &amp; &#x27;Jerry&#x27;&lt;&#x2F;b&gt;", true},
		{"escape backslash and backtick", Escape(), "a\\b`c", "a&#x5C;b&#96;c", true},
		{"not empty ok", NotEmpty(), "x", "x", true},
		{"not empty fails", NotEmpty(), "", "", false},
		{"isint ok", IsInt(), "2021", "2021", true},
		{"isint signed", IsInt(), "+2021", "+2021", true},
		{"isint leading zero", IsInt(), "02021", "02021", false},
		{"isint decimal", IsInt(), "2021.5", "2021.5", false},
		{"isint text", IsInt(), "abc", "abc", false},
		{"isnumeric decimal", IsNumeric(), "7.9", "7.9", true},
		{"isnumeric fraction only", IsNumeric(), ".5", ".5", true},
		{"isnumeric text", IsNumeric(), "12a", "12a", false},
		{"toint string", ToInt(), "+42", 42, true},
		{"toint truncates", ToInt(), "7.9", 7, true},
		{"toint no digits", ToInt(), ".5", NoMatchID, true},
		{"toint overflow", ToInt(), "99999999999999999999", NoMatchID, true},
		{"range inside", Range(1800, 2100), 1800, 1800, true},
		{"range upper bound", Range(1800, 2100), 2100, 2100, true},
		{"range below", Range(1800, 2100), 1799, 1799, false},
		{"range non int", Range(1800, 2100), "1900", "1900", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.step.apply(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestRule_IsImmutable(t *testing.T) {
	base := Body("f", "msg").Trim()
	a := base.NotEmpty()
	b := base.Escape()

	require.Len(t, a.Steps, 2)
	require.Len(t, b.Steps, 2)
	assert.Equal(t, "notEmpty", a.Steps[1].Name())
	assert.Equal(t, "escape", b.Steps[1].Name())
	assert.Len(t, base.Steps, 1)
}

func TestRuleSet_Run(t *testing.T) {
	rules := RuleSet{
		Body("name", "name required").Trim().NotEmpty(),
		Body("age", "bad age").OptionalField().IntInRange(0, 150),
		Param("id", "bad id").IsNumeric().ToInt(),
	}

	t.Run("clean input", func(t *testing.T) {
		data, errs := rules.Run(Input{
			Body:   bodyOf(t, `{"name":"  Ana ","age":30}`),
			Params: map[string]string{"id": "12"},
		})
		require.Nil(t, errs)
		assert.Equal(t, Data{"name": "Ana", "age": 30, "id": 12}, data)
	})

	t.Run("optional field absent is left out", func(t *testing.T) {
		data, errs := rules.Run(Input{
			Body:   bodyOf(t, `{"name":"Ana"}`),
			Params: map[string]string{"id": "1"},
		})
		require.Nil(t, errs)
		assert.NotContains(t, data, "age")
		assert.Nil(t, data.IntPtr("age"))
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		data, errs := rules.Run(Input{
			Body:   bodyOf(t, `{"age":"old"}`),
			Params: map[string]string{"id": "x"},
		})
		assert.Nil(t, data)
		assert.Equal(t, Errors{"name": "name required", "age": "bad age", "id": "bad id"}, errs)
	})

	t.Run("objects cannot be coerced", func(t *testing.T) {
		_, errs := rules.Run(Input{
			Body:   bodyOf(t, `{"name":{"x":1}}`),
			Params: map[string]string{"id": "1"},
		})
		assert.Equal(t, "name required", errs["name"])
	})

	t.Run("optional null is validated", func(t *testing.T) {
		_, errs := rules.Run(Input{
			Body:   bodyOf(t, `{"name":"Ana","age":null}`),
			Params: map[string]string{"id": "1"},
		})
		assert.Equal(t, "bad age", errs["age"])
	})
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in     any
		want   any
		wantOK bool
	}{
		{nil, "", true},
		{"x", "x", true},
		{json.Number("2021"), "2021", true},
		{json.Number("2021.0"), "2021", true},
		{json.Number("7.5"), "7.5", true},
		{true, "true", true},
		{float64(3), "3", true},
		{[]any{"a"}, nil, false},
		{map[string]any{}, nil, false},
	}
	for _, tc := range tests {
		got, ok := coerce(tc.in)
		assert.Equal(t, tc.wantOK, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{"b": "second", "a": "first"}
	assert.Equal(t, "validation failed: a: first; b: second", errs.Error())
}
