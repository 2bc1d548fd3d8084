// Package netlist implements the validation and graph-derivation core:
// structural schema checks, electrical-sanity rules, violation reporting
// and the derived node/edge projection used by the frontend.
package netlist

import (
	"encoding/json"
	"strings"
)

// Status is the overall outcome of a validation run.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Netlist is the root document of an uploaded PCB description.
// Both arrays are ordered; component order doubles as display order.
type Netlist struct {
	Components []Component `json:"components" validate:"required,min=1,dive"`
	Nets       []Net       `json:"nets" validate:"required,min=1,dive"`
}

// Component is a physical part placed on the board.
type Component struct {
	ID   string `json:"id" validate:"required,slug"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Pins []Pin  `json:"pins" validate:"required,min=1,dive"`
}

// Pin is a named connection point on a component. Pin ids are unique
// within their owning component only, not globally.
type Pin struct {
	ID   string `json:"id" validate:"required,slug"`
	Name string `json:"name" validate:"required"`
}

// Net is a named electrical connection tying pins together.
type Net struct {
	ID          string       `json:"id" validate:"required,slug"`
	Name        string       `json:"name" validate:"required"`
	Connections []Connection `json:"connections" validate:"required,min=1,dive"`
}

// Connection is one (component, pin) endpoint belonging to a net.
type Connection struct {
	ComponentID string `json:"componentId" validate:"required,slug"`
	PinID       string `json:"pinId" validate:"required,slug"`
}

// LocationKind selects which entity table a location points into.
type LocationKind string

const (
	LocationComponent LocationKind = "component"
	LocationNet       LocationKind = "net"
)

// Location is the canonical address of the element a violation points at.
// It serializes to the string form "component:<id>" or "net:<id>"; the zero
// value means "not attributable to a single element" and is omitted on the
// wire.
type Location struct {
	Kind LocationKind
	ID   string
}

// ComponentLocation addresses a component by id.
func ComponentLocation(id string) Location {
	return Location{Kind: LocationComponent, ID: id}
}

// NetLocation addresses a net by id.
func NetLocation(id string) Location {
	return Location{Kind: LocationNet, ID: id}
}

// IsZero reports whether the location is absent.
func (l Location) IsZero() bool {
	return l.Kind == "" && l.ID == ""
}

// String renders the wire form. Ids are slug-constrained, so no escaping
// is needed.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	return string(l.Kind) + ":" + l.ID
}

// ParseLocation splits an address on the first colon. The second return is
// false for anything that is not a well-formed component/net address.
func ParseLocation(s string) (Location, bool) {
	prefix, id, found := strings.Cut(s, ":")
	if !found || id == "" {
		return Location{}, false
	}
	switch LocationKind(prefix) {
	case LocationComponent, LocationNet:
		return Location{Kind: LocationKind(prefix), ID: id}, true
	}
	return Location{}, false
}

// MarshalJSON emits the string form.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses the string form. Unrecognized addresses collapse to
// the zero location rather than failing: consumers of stored violations
// treat a malformed address as "no match found".
func (l *Location) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if loc, ok := ParseLocation(s); ok {
		*l = loc
	} else {
		*l = Location{}
	}
	return nil
}

// Violation is one reported deviation from structural or semantic
// correctness.
type Violation struct {
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Location Location `json:"location,omitzero"`
}

// ValidationResult is the outcome of a full validation run. Violations is
// empty exactly when Status is valid.
type ValidationResult struct {
	Status     Status      `json:"status"`
	Violations []Violation `json:"violations"`
}

// Position is a 2-D placement hint for a node. Initial positions are a
// deterministic placeholder; a layout oracle overwrites them.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is the derived graph view of one component.
type Node struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Pins      []Pin    `json:"pins"`
	IsInvalid bool     `json:"isInvalid"`
	Position  Position `json:"position"`
}

// Edge links the head connection of a net to one of its tail connections.
type Edge struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Label     string `json:"label"`
	IsInvalid bool   `json:"isInvalid"`
}

// Graph is the transient projection consumed by the rendering collaborator.
// It is recomputed on read and has no lifecycle of its own.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
