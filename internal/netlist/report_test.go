package netlist_test

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	apperrors "netlist-visualizer-backend/internal/errors"
	"netlist-visualizer-backend/internal/netlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResult_Empty(t *testing.T) {
	result := netlist.BuildResult(nil, netlist.MaxViolations)
	assert.Equal(t, netlist.StatusValid, result.Status)
	// Serializes as [] rather than null.
	require.NotNil(t, result.Violations)
	assert.Empty(t, result.Violations)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "valid", "violations": []}`, string(data))
}

func TestBuildResult_Invalid(t *testing.T) {
	violations := []netlist.Violation{
		{Rule: netlist.RuleSingleEndedNet, Message: "m", Location: netlist.NetLocation("N1")},
	}
	result := netlist.BuildResult(violations, netlist.MaxViolations)
	assert.Equal(t, netlist.StatusInvalid, result.Status)
	assert.Equal(t, violations, result.Violations)
}

func TestBuildResult_Truncation(t *testing.T) {
	violations := make([]netlist.Violation, 0, 15)
	for i := 0; i < 15; i++ {
		violations = append(violations, netlist.Violation{
			Rule:    netlist.RuleBlankName,
			Message: fmt.Sprintf("violation %d", i),
		})
	}

	result := netlist.BuildResult(violations, 10)
	require.Len(t, result.Violations, 11)
	assert.Equal(t, "violation 9", result.Violations[9].Message)
	assert.Equal(t, netlist.RuleViolationsTruncated, result.Violations[10].Rule)
	assert.Contains(t, result.Violations[10].Message, "10")
}

func TestBuildResult_AtCapIsNotTruncated(t *testing.T) {
	violations := make([]netlist.Violation, 10)
	result := netlist.BuildResult(violations, 10)
	assert.Len(t, result.Violations, 10)
	for _, v := range result.Violations {
		assert.NotEqual(t, netlist.RuleViolationsTruncated, v.Rule)
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	n, result, err := netlist.Validate([]byte(validNetlistJSON), netlist.DefaultRuleConfig())
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, netlist.StatusValid, result.Status)
	assert.Empty(t, result.Violations)
}

func TestValidate_NotJSON(t *testing.T) {
	n, _, err := netlist.Validate([]byte("not json"), netlist.DefaultRuleConfig())
	assert.Nil(t, n)
	require.Error(t, err)
	assert.True(t, apperrors.IsMalformedInput(err))
}

func TestValidate_StructuralFailureSkipsRules(t *testing.T) {
	// The document has no GND net, but the rule engine must never see it:
	// the missing "nets" field is a structural failure.
	input := `{"components": [{"id": "U1", "name": "MCU", "type": "ic", "pins": [{"id": "P1", "name": "P1"}]}]}`

	n, result, err := netlist.Validate([]byte(input), netlist.DefaultRuleConfig())
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, netlist.StatusInvalid, result.Status)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, netlist.RuleSchema, result.Violations[0].Rule)
}

func TestValidate_RuleViolations(t *testing.T) {
	input := `{
		"components": [{"id": "U1", "name": "MCU", "type": "ic", "pins": [{"id": "P1", "name": "P1"}]}],
		"nets": [{"id": "N1", "name": "GND", "connections": [{"componentId": "U1", "pinId": "P1"}]}]
	}`

	n, result, err := netlist.Validate([]byte(input), netlist.DefaultRuleConfig())
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, netlist.StatusInvalid, result.Status)
	assert.Equal(t, []string{netlist.RuleSingleEndedNet}, rulesOf(result.Violations))
}

func TestValidate_Idempotent(t *testing.T) {
	input := []byte(`{
		"components": [{"id": "U1", "name": " ", "type": "ic", "pins": [{"id": "P1", "name": "P1"}]}],
		"nets": [{"id": "N1", "name": "SIG", "connections": [{"componentId": "U1", "pinId": "P1"}]}]
	}`)

	_, first, err := netlist.Validate(input, netlist.DefaultRuleConfig())
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, again, err := netlist.Validate(input, netlist.DefaultRuleConfig())
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestLoadRuleConfig(t *testing.T) {
	path := t.TempDir() + "/rules.yaml"
	content := "disabled:\n  - missing-gnd-net\nmax_violations: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := netlist.LoadRuleConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{netlist.RuleMissingGNDNet}, cfg.Disabled)
	assert.Equal(t, 500, cfg.MaxViolations)
}

func TestLoadRuleConfig_DefaultsCapWhenUnset(t *testing.T) {
	path := t.TempDir() + "/rules.yaml"
	require.NoError(t, os.WriteFile(path, []byte("disabled: []\n"), 0o644))

	cfg, err := netlist.LoadRuleConfig(path)
	require.NoError(t, err)
	assert.Equal(t, netlist.MaxViolations, cfg.MaxViolations)
}

func TestLoadRuleConfig_MissingFile(t *testing.T) {
	_, err := netlist.LoadRuleConfig(t.TempDir() + "/nope.yaml")
	assert.Error(t, err)
}
