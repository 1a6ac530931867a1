package validation

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// DefaultMessage is reported for a failing rule that declares no message.
const DefaultMessage = "Invalid value"

// Location tells a rule where to read its field from.
type Location int

const (
	// InBody reads the field from the decoded JSON body.
	InBody Location = iota
	// InParams reads the field from the route's path parameters.
	InParams
)

func (l Location) String() string {
	if l == InParams {
		return "params"
	}
	return "body"
}

// Input is the raw request data a RuleSet runs against. Body values are
// whatever encoding/json produced with UseNumber enabled.
type Input struct {
	Body   map[string]any
	Params map[string]string
}

func (in Input) lookup(loc Location, field string) (any, bool) {
	if loc == InParams {
		v, ok := in.Params[field]
		return v, ok
	}
	v, ok := in.Body[field]
	return v, ok
}

// Rule binds a chain of steps and an error message to one field.
// Rules are values; every builder method returns a modified copy.
type Rule struct {
	Field    string
	Location Location
	Optional bool
	Message  string
	Steps    []Step
}

// Body starts a rule for a body field.
func Body(field, message string) Rule {
	return Rule{Field: field, Location: InBody, Message: message}
}

// Param starts a rule for a path parameter.
func Param(field, message string) Rule {
	return Rule{Field: field, Location: InParams, Message: message}
}

// OptionalField skips the rule entirely when the field is absent.
func (r Rule) OptionalField() Rule {
	r.Optional = true
	return r
}

// Then appends steps to the chain.
func (r Rule) Then(steps ...Step) Rule {
	r.Steps = append(slices.Clone(r.Steps), steps...)
	return r
}

// Trim appends a Trim step.
func (r Rule) Trim() Rule { return r.Then(Trim()) }

// Escape appends an Escape step.
func (r Rule) Escape() Rule { return r.Then(Escape()) }

// NotEmpty appends a NotEmpty step.
func (r Rule) NotEmpty() Rule { return r.Then(NotEmpty()) }

// IsNumeric appends an IsNumeric step.
func (r Rule) IsNumeric() Rule { return r.Then(IsNumeric()) }

// ToInt appends a ToInt step.
func (r Rule) ToInt() Rule { return r.Then(ToInt()) }

// IntInRange appends IsInt, ToInt and Range steps.
func (r Rule) IntInRange(lo, hi int) Rule { return r.Then(IsInt(), ToInt(), Range(lo, hi)) }

func (r Rule) message() string {
	if r.Message == "" {
		return DefaultMessage
	}
	return r.Message
}

// run returns the sanitized value, whether the field was submitted at all,
// and whether every check passed.
func (r Rule) run(in Input) (value any, present bool, ok bool) {
	raw, present := in.lookup(r.Location, r.Field)
	if !present && r.Optional {
		return nil, false, true
	}

	value, ok = coerce(raw)
	if !ok {
		return nil, present, false
	}
	for _, step := range r.Steps {
		value, ok = step.apply(value)
		if !ok {
			return nil, present, false
		}
	}
	return value, present, true
}

// RuleSet is the ordered list of rules declared for one route.
type RuleSet []Rule

// Run evaluates every rule against in. When any rule fails the returned
// Errors holds one message per failing field and Data is nil. Otherwise Data
// holds the sanitized value of each submitted field; absent fields are left
// out rather than set to a zero value.
func (rs RuleSet) Run(in Input) (Data, Errors) {
	data := make(Data, len(rs))
	var errs Errors

	for _, rule := range rs {
		if _, failed := errs[rule.Field]; failed {
			continue
		}
		value, present, ok := rule.run(in)
		if !ok {
			if errs == nil {
				errs = make(Errors)
			}
			errs[rule.Field] = rule.message()
			delete(data, rule.Field)
			continue
		}
		if present {
			data[rule.Field] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return data, nil
}

// Errors maps a field name to the message of its first failing rule.
type Errors map[string]string

// Error lists the failing fields in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// coerce turns a decoded JSON value into the string every chain starts from.
// Objects and arrays cannot be coerced.
func coerce(raw any) (any, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return numberString(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return nil, false
	}
}

// numberString renders a JSON number in its shortest decimal form, so 2021.0
// and 2021 both read as "2021".
func numberString(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
