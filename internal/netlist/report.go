package netlist

import "fmt"

// RuleViolationsTruncated marks a capped violation list; see BuildResult.
const RuleViolationsTruncated = "violations-truncated"

// BuildResult normalizes a violation list into a ValidationResult.
// Status is valid exactly when the list is empty. Lists longer than max
// are cut and a truncation marker is appended as the final entry.
func BuildResult(violations []Violation, max int) ValidationResult {
	if max <= 0 {
		max = MaxViolations
	}
	if len(violations) > max {
		capped := make([]Violation, max, max+1)
		copy(capped, violations[:max])
		violations = append(capped, Violation{
			Rule:    RuleViolationsTruncated,
			Message: fmt.Sprintf("violation list truncated after %d entries", max),
		})
	}
	if len(violations) == 0 {
		return ValidationResult{Status: StatusValid, Violations: []Violation{}}
	}
	return ValidationResult{Status: StatusInvalid, Violations: violations}
}

// Validate runs the full pipeline over a raw upload: structural checks
// first, then the rule engine. A structural failure skips the rule engine
// entirely and the typed netlist is nil.
//
// The error return is reserved for input that is not JSON at all
// (MalformedInputError); a malformed or semantically wrong netlist is an
// ordinary invalid result, never an error.
func Validate(data []byte, cfg RuleConfig) (*Netlist, ValidationResult, error) {
	n, structural, err := DecodeNetlist(data)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	if len(structural) > 0 {
		return nil, BuildResult(structural, cfg.MaxViolations), nil
	}
	return n, BuildResult(RunRules(n, cfg), cfg.MaxViolations), nil
}
