package netlist

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule identifiers reported by the rule engine.
const (
	RuleDuplicateComponentID = "duplicate-component-id"
	RuleDuplicatePinID       = "duplicate-pin-id"
	RuleDuplicateNetID       = "duplicate-net-id"
	RuleDanglingConnection   = "dangling-connection"
	RuleSingleEndedNet       = "single-ended-net"
	RuleBlankName            = "blank-name"
	RuleMissingGNDNet        = "missing-gnd-net"
	RuleUnconnectedGNDPin    = "unconnected-gnd-pin"
)

// MaxViolations bounds the reported list on adversarial input; the reporter
// appends a truncation marker past this point.
const MaxViolations = 1000

// RuleConfig tunes the rule engine. The zero value disables nothing and
// uses the default violation cap.
type RuleConfig struct {
	Disabled      []string `yaml:"disabled"`
	MaxViolations int      `yaml:"max_violations"`
}

// DefaultRuleConfig enables every rule.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{MaxViolations: MaxViolations}
}

// LoadRuleConfig reads a yaml rule configuration, e.g.:
//
//	disabled:
//	  - missing-gnd-net
//	max_violations: 500
func LoadRuleConfig(path string) (RuleConfig, error) {
	cfg := DefaultRuleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read rule config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse rule config: %w", err)
	}
	if cfg.MaxViolations <= 0 {
		cfg.MaxViolations = MaxViolations
	}
	return cfg, nil
}

func (c RuleConfig) enabled(rule string) bool {
	for _, d := range c.Disabled {
		if d == rule {
			return false
		}
	}
	return true
}

// A rule is a pure function over the whole netlist. Rules never fail on a
// structurally valid netlist: every inconsistency they find becomes a
// violation, not an error.
type rule struct {
	id  string
	run func(*Netlist) []Violation
}

// Evaluation order is fixed; within one rule, violations follow input
// order. Rules do not short-circuit each other.
var ruleRegistry = []rule{
	{RuleDuplicateComponentID, checkDuplicateComponentIDs},
	{RuleDuplicatePinID, checkDuplicatePinIDs},
	{RuleDuplicateNetID, checkDuplicateNetIDs},
	{RuleDanglingConnection, checkDanglingConnections},
	{RuleSingleEndedNet, checkSingleEndedNets},
	{RuleBlankName, checkBlankNames},
	{RuleMissingGNDNet, checkMissingGNDNet},
	{RuleUnconnectedGNDPin, checkUnconnectedGNDPins},
}

// RunRules executes every enabled rule over a structurally valid netlist
// and concatenates the results.
func RunRules(n *Netlist, cfg RuleConfig) []Violation {
	var out []Violation
	for _, r := range ruleRegistry {
		if !cfg.enabled(r.id) {
			continue
		}
		out = append(out, r.run(n)...)
	}
	return out
}

// Every occurrence of an id beyond the first is reported.
func checkDuplicateComponentIDs(n *Netlist) []Violation {
	var out []Violation
	seen := make(map[string]bool, len(n.Components))
	for _, c := range n.Components {
		if seen[c.ID] {
			out = append(out, Violation{
				Rule:     RuleDuplicateComponentID,
				Message:  fmt.Sprintf("component id %q is declared more than once", c.ID),
				Location: ComponentLocation(c.ID),
			})
		}
		seen[c.ID] = true
	}
	return out
}

func checkDuplicatePinIDs(n *Netlist) []Violation {
	var out []Violation
	for _, c := range n.Components {
		seen := make(map[string]bool, len(c.Pins))
		for _, p := range c.Pins {
			if seen[p.ID] {
				out = append(out, Violation{
					Rule:     RuleDuplicatePinID,
					Message:  fmt.Sprintf("pin id %q is declared more than once on component %q", p.ID, c.ID),
					Location: ComponentLocation(c.ID),
				})
			}
			seen[p.ID] = true
		}
	}
	return out
}

func checkDuplicateNetIDs(n *Netlist) []Violation {
	var out []Violation
	seen := make(map[string]bool, len(n.Nets))
	for _, net := range n.Nets {
		if seen[net.ID] {
			out = append(out, Violation{
				Rule:     RuleDuplicateNetID,
				Message:  fmt.Sprintf("net id %q is declared more than once", net.ID),
				Location: NetLocation(net.ID),
			})
		}
		seen[net.ID] = true
	}
	return out
}

func checkDanglingConnections(n *Netlist) []Violation {
	pinsByComponent := make(map[string]map[string]bool, len(n.Components))
	for _, c := range n.Components {
		pins := make(map[string]bool, len(c.Pins))
		for _, p := range c.Pins {
			pins[p.ID] = true
		}
		pinsByComponent[c.ID] = pins
	}

	var out []Violation
	for _, net := range n.Nets {
		for i, conn := range net.Connections {
			pins, ok := pinsByComponent[conn.ComponentID]
			if !ok {
				out = append(out, Violation{
					Rule:     RuleDanglingConnection,
					Message:  fmt.Sprintf("connection %d references unknown component %q", i, conn.ComponentID),
					Location: NetLocation(net.ID),
				})
				continue
			}
			if !pins[conn.PinID] {
				out = append(out, Violation{
					Rule:     RuleDanglingConnection,
					Message:  fmt.Sprintf("connection %d references unknown pin %q on component %q", i, conn.PinID, conn.ComponentID),
					Location: NetLocation(net.ID),
				})
			}
		}
	}
	return out
}

// A net with a single connection has no partner to connect to. It still
// counts toward an invalid status; see DESIGN.md for the policy decision.
func checkSingleEndedNets(n *Netlist) []Violation {
	var out []Violation
	for _, net := range n.Nets {
		if len(net.Connections) == 1 {
			out = append(out, Violation{
				Rule:     RuleSingleEndedNet,
				Message:  fmt.Sprintf("net %q has a single connection and cannot form a link", net.ID),
				Location: NetLocation(net.ID),
			})
		}
	}
	return out
}

// The schema only rejects empty strings; whitespace-only names slip
// through structurally and are caught here.
func checkBlankNames(n *Netlist) []Violation {
	var out []Violation
	for _, c := range n.Components {
		if strings.TrimSpace(c.Name) == "" {
			out = append(out, Violation{
				Rule:     RuleBlankName,
				Message:  fmt.Sprintf("component %q has a blank name", c.ID),
				Location: ComponentLocation(c.ID),
			})
		}
		for _, p := range c.Pins {
			if strings.TrimSpace(p.Name) == "" {
				out = append(out, Violation{
					Rule:     RuleBlankName,
					Message:  fmt.Sprintf("pin %q on component %q has a blank name", p.ID, c.ID),
					Location: ComponentLocation(c.ID),
				})
			}
		}
	}
	for _, net := range n.Nets {
		if strings.TrimSpace(net.Name) == "" {
			out = append(out, Violation{
				Rule:     RuleBlankName,
				Message:  fmt.Sprintf("net %q has a blank name", net.ID),
				Location: NetLocation(net.ID),
			})
		}
	}
	return out
}

func checkMissingGNDNet(n *Netlist) []Violation {
	for _, net := range n.Nets {
		if strings.EqualFold(net.Name, "GND") {
			return nil
		}
	}
	return []Violation{{
		Rule:    RuleMissingGNDNet,
		Message: `no net named "GND" found`,
	}}
}

// Components that declare a GND pin must actually connect to a GND net.
// Connector-type components are exempt. Quiet when no GND net exists at
// all: checkMissingGNDNet already covers that case.
func checkUnconnectedGNDPins(n *Netlist) []Violation {
	gndNets := make(map[string]bool)
	for _, net := range n.Nets {
		if strings.EqualFold(net.Name, "GND") {
			gndNets[net.ID] = true
		}
	}
	if len(gndNets) == 0 {
		return nil
	}

	netsByComponent := make(map[string]map[string]bool)
	for _, net := range n.Nets {
		for _, conn := range net.Connections {
			if netsByComponent[conn.ComponentID] == nil {
				netsByComponent[conn.ComponentID] = make(map[string]bool)
			}
			netsByComponent[conn.ComponentID][net.ID] = true
		}
	}

	var out []Violation
	for _, c := range n.Components {
		if strings.EqualFold(c.Type, "connector") {
			continue
		}
		hasGNDPin := false
		for _, p := range c.Pins {
			if strings.EqualFold(p.Name, "GND") {
				hasGNDPin = true
				break
			}
		}
		if !hasGNDPin {
			continue
		}
		connected := false
		for netID := range netsByComponent[c.ID] {
			if gndNets[netID] {
				connected = true
				break
			}
		}
		if !connected {
			out = append(out, Violation{
				Rule:     RuleUnconnectedGNDPin,
				Message:  fmt.Sprintf("component %q declares a GND pin but is not connected to a GND net", c.ID),
				Location: ComponentLocation(c.ID),
			})
		}
	}
	return out
}
