package netlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	apperrors "netlist-visualizer-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RuleSchema tags every structural violation produced by DecodeNetlist.
const RuleSchema = "schema"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validate is shared across runs; it carries no per-run state.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	// Report json field names in error namespaces instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeNetlist parses a raw upload and checks structural conformance.
//
// Bytes that are not JSON at all yield a MalformedInputError. Parseable
// input that does not match the netlist shape yields a list of rule=schema
// violations; the rule engine never sees such input. The typed netlist is
// returned only when the violation list is empty.
//
// An object-type mismatch suppresses the field-level checks for that
// object, so each broken element reports its outermost problem only.
func DecodeNetlist(data []byte) (*Netlist, []Violation, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, apperrors.NewMalformedInputError("empty request body")
	}
	if !json.Valid(data) {
		return nil, nil, apperrors.NewMalformedInputError("request body is not valid JSON")
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil || root == nil {
		return nil, []Violation{schemaViolation("netlist must be a JSON object", Location{})}, nil
	}

	var violations []Violation

	// Deterministic ordering of unknown-key reports keeps results
	// byte-identical across runs.
	extra := make([]string, 0, len(root))
	for key := range root {
		if key != "components" && key != "nets" {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		violations = append(violations, schemaViolation(fmt.Sprintf("unexpected field %q", key), Location{}))
	}

	components, vs := decodeComponents(root["components"])
	violations = append(violations, vs...)

	nets, vs := decodeNets(root["nets"])
	violations = append(violations, vs...)

	if len(violations) > 0 {
		return nil, violations, nil
	}
	return &Netlist{Components: components, Nets: nets}, nil, nil
}

func decodeComponents(raw json.RawMessage) ([]Component, []Violation) {
	if raw == nil {
		return nil, []Violation{schemaViolation(`missing required field "components"`, Location{})}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, []Violation{schemaViolation(`"components" must be an array`, Location{})}
	}
	if len(items) == 0 {
		return nil, []Violation{schemaViolation(`"components" must contain at least one component`, Location{})}
	}

	components := make([]Component, 0, len(items))
	var violations []Violation
	for i, item := range items {
		var c Component
		if err := decodeStrict(item, &c); err != nil {
			violations = append(violations, schemaViolation(
				fmt.Sprintf("components[%d]: %s", i, decodeErrorMessage(err)),
				componentLocationFromRaw(item)))
			continue
		}
		if err := validate.Struct(c); err != nil {
			violations = append(violations, fieldViolations(err, fmt.Sprintf("components[%d]", i), componentLocationIfSlug(c.ID))...)
			continue
		}
		components = append(components, c)
	}
	return components, violations
}

func decodeNets(raw json.RawMessage) ([]Net, []Violation) {
	if raw == nil {
		return nil, []Violation{schemaViolation(`missing required field "nets"`, Location{})}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, []Violation{schemaViolation(`"nets" must be an array`, Location{})}
	}
	if len(items) == 0 {
		return nil, []Violation{schemaViolation(`"nets" must contain at least one net`, Location{})}
	}

	nets := make([]Net, 0, len(items))
	var violations []Violation
	for i, item := range items {
		var n Net
		if err := decodeStrict(item, &n); err != nil {
			violations = append(violations, schemaViolation(
				fmt.Sprintf("nets[%d]: %s", i, decodeErrorMessage(err)),
				netLocationFromRaw(item)))
			continue
		}
		if err := validate.Struct(n); err != nil {
			violations = append(violations, fieldViolations(err, fmt.Sprintf("nets[%d]", i), netLocationIfSlug(n.ID))...)
			continue
		}
		nets = append(nets, n)
	}
	return nets, violations
}

// decodeStrict rejects unknown fields and trailing garbage.
func decodeStrict(raw json.RawMessage, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("field %q cannot be decoded from JSON %s", typeErr.Field, typeErr.Value)
		}
		return "element must be a JSON object"
	}
	return strings.TrimPrefix(err.Error(), "json: ")
}

// fieldViolations converts validator errors into schema violations. The
// namespace prefix ("components[3]") replaces the Go struct name so that
// messages point into the uploaded document.
func fieldViolations(err error, prefix string, loc Location) []Violation {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{schemaViolation(fmt.Sprintf("%s: %v", prefix, err), loc)}
	}
	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		_, path, found := strings.Cut(fe.Namespace(), ".")
		if !found {
			path = fe.Field()
		}
		out = append(out, schemaViolation(fmt.Sprintf("%s.%s: %s", prefix, path, constraintMessage(fe)), loc))
	}
	return out
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required and must be non-empty"
	case "slug":
		return `must match "[A-Za-z0-9_-]+"`
	case "min":
		return "must contain at least one element"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// componentLocationFromRaw best-effort recovers an addressable id from an
// element that failed to decode.
func componentLocationFromRaw(raw json.RawMessage) Location {
	return componentLocationIfSlug(recoverID(raw))
}

func netLocationFromRaw(raw json.RawMessage) Location {
	return netLocationIfSlug(recoverID(raw))
}

func componentLocationIfSlug(id string) Location {
	if !slugPattern.MatchString(id) {
		return Location{}
	}
	return ComponentLocation(id)
}

func netLocationIfSlug(id string) Location {
	if !slugPattern.MatchString(id) {
		return Location{}
	}
	return NetLocation(id)
}

func recoverID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

func schemaViolation(message string, loc Location) Violation {
	return Violation{Rule: RuleSchema, Message: message, Location: loc}
}
