// Package validation runs declarative per-field rules against request input.
//
// A Rule names one field, where it is read from and an ordered chain of
// steps. Sanitizing steps (Trim, Escape, ToInt) rewrite the value; checking
// steps (NotEmpty, IsInt, IsNumeric, Range) reject it with the rule's
// message. A RuleSet collects the first failure of every field into Errors,
// or the sanitized values of all submitted fields into Data.
package validation
