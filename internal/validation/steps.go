package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	intPattern     = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	numericPattern = regexp.MustCompile(`^[-+]?(?:[0-9]*\.)?[0-9]+$`)
	leadingInt     = regexp.MustCompile(`^\s*[-+]?[0-9]+`)

	markupEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#x27;",
		"<", "&lt;",
		">", "&gt;",
		"/", "&#x2F;",
		`\`, "&#x5C;",
		"`", "&#96;",
	)
)

// validate holds the checks shared by every rule.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty or reserved tag names.
	_ = v.RegisterValidation("isint", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && intPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isnumeric", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && numericPattern.MatchString(fl.Field().String())
	})
	return v
}

// Step is one link of a rule chain. It receives the current value (a string,
// or an int once ToInt has run) and returns the value to pass on, or false
// when the field fails.
type Step struct {
	name  string
	apply func(v any) (any, bool)
}

// Name identifies the step in logs and tests.
func (s Step) Name() string { return s.name }

// Trim removes surrounding whitespace.
func Trim() Step {
	return Step{name: "trim", apply: func(v any) (any, bool) {
		return strings.TrimSpace(toString(v)), true
	}}
}

// Escape replaces markup-significant characters with HTML entities.
func Escape() Step {
	return Step{name: "escape", apply: func(v any) (any, bool) {
		return markupEscaper.Replace(toString(v)), true
	}}
}

// NoMatchID is what ToInt yields for a value with no representable leading
// integer, such as ".5" or a number beyond the int range. No stored row has
// this id, and Range rejects it.
const NoMatchID = -1

// ToInt keeps the leading integer part of the value ("7.9" becomes 7).
// Values without one become NoMatchID.
func ToInt() Step {
	return Step{name: "toInt", apply: func(v any) (any, bool) {
		if n, ok := v.(int); ok {
			return n, true
		}
		digits := strings.TrimSpace(leadingInt.FindString(toString(v)))
		n, err := strconv.Atoi(digits)
		if err != nil {
			return NoMatchID, true
		}
		return n, true
	}}
}

// NotEmpty requires at least one character.
func NotEmpty() Step {
	return checkTag("notEmpty", "required")
}

// IsInt requires an optionally signed integer without leading zeros.
func IsInt() Step {
	return checkTag("isInt", "isint")
}

// IsNumeric requires an optionally signed decimal number.
func IsNumeric() Step {
	return checkTag("isNumeric", "isnumeric")
}

// Range requires an int value within [lo, hi]. It must follow ToInt.
func Range(lo, hi int) Step {
	tag := fmt.Sprintf("gte=%d,lte=%d", lo, hi)
	return Step{name: "range", apply: func(v any) (any, bool) {
		n, ok := v.(int)
		if !ok {
			return v, false
		}
		return n, validate.Var(n, tag) == nil
	}}
}

func checkTag(name, tag string) Step {
	return Step{name: name, apply: func(v any) (any, bool) {
		s := toString(v)
		return s, validate.Var(s, tag) == nil
	}}
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
