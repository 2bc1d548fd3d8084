package testutils

import (
	"encoding/json"

	"netlist-visualizer-backend/internal/database/models"
	"netlist-visualizer-backend/internal/netlist"

	"github.com/google/uuid"
)

// NetlistFactory provides methods to create test netlist documents
type NetlistFactory struct{}

// NewNetlistFactory creates a new NetlistFactory
func NewNetlistFactory() *NetlistFactory {
	return &NetlistFactory{}
}

// Valid returns a netlist that passes every rule: two components, a GND
// net and a signal net, each with two endpoints.
func (f *NetlistFactory) Valid() *netlist.Netlist {
	return &netlist.Netlist{
		Components: []netlist.Component{
			{
				ID:   "U1",
				Name: "MCU",
				Type: "ic",
				Pins: []netlist.Pin{
					{ID: "VCC", Name: "VCC"},
					{ID: "GND", Name: "GND"},
					{ID: "TX", Name: "TX"},
				},
			},
			{
				ID:   "J1",
				Name: "Header",
				Type: "connector",
				Pins: []netlist.Pin{
					{ID: "P1", Name: "P1"},
					{ID: "P2", Name: "P2"},
				},
			},
		},
		Nets: []netlist.Net{
			{
				ID:   "N1",
				Name: "GND",
				Connections: []netlist.Connection{
					{ComponentID: "U1", PinID: "GND"},
					{ComponentID: "J1", PinID: "P2"},
				},
			},
			{
				ID:   "N2",
				Name: "UART_TX",
				Connections: []netlist.Connection{
					{ComponentID: "U1", PinID: "TX"},
					{ComponentID: "J1", PinID: "P1"},
				},
			},
		},
	}
}

// SingleEnded returns a netlist whose two nets each have exactly one
// endpoint, so it trips single-ended-net on both while staying
// structurally well-formed.
func (f *NetlistFactory) SingleEnded() *netlist.Netlist {
	return &netlist.Netlist{
		Components: []netlist.Component{
			{
				ID:   "U1",
				Name: "Regulator",
				Type: "ic",
				Pins: []netlist.Pin{
					{ID: "VCC", Name: "VCC"},
					{ID: "GND", Name: "GND"},
				},
			},
			{
				ID:   "U2",
				Name: "Debug port",
				Type: "connector",
				Pins: []netlist.Pin{
					{ID: "P1", Name: "P1"},
				},
			},
		},
		Nets: []netlist.Net{
			{
				ID:   "N1",
				Name: "GND",
				Connections: []netlist.Connection{
					{ComponentID: "U1", PinID: "GND"},
				},
			},
			{
				ID:   "N2",
				Name: "DATA",
				Connections: []netlist.Connection{
					{ComponentID: "U2", PinID: "P1"},
				},
			},
		},
	}
}

// ValidJSON returns the Valid netlist serialized to bytes, the shape the
// upload path actually receives.
func (f *NetlistFactory) ValidJSON() []byte {
	raw, _ := json.Marshal(f.Valid())
	return raw
}

// SingleEndedJSON returns the SingleEnded netlist serialized to bytes.
func (f *NetlistFactory) SingleEndedJSON() []byte {
	raw, _ := json.Marshal(f.SingleEnded())
	return raw
}

// SubmissionFactory provides methods to create test Submission rows
type SubmissionFactory struct {
	netlists *NetlistFactory
}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{netlists: NewNetlistFactory()}
}

// Create creates a valid submission owned by the given user.
func (f *SubmissionFactory) Create(userID string) *models.Submission {
	return &models.Submission{
		ID:         uuid.New(),
		UserID:     userID,
		Netlist:    f.netlists.ValidJSON(),
		Status:     string(netlist.StatusValid),
		Violations: json.RawMessage(`[]`),
	}
}

// CreateInvalid creates a submission whose stored report carries the given
// violations.
func (f *SubmissionFactory) CreateInvalid(userID string, violations []netlist.Violation) *models.Submission {
	raw, _ := json.Marshal(violations)
	return &models.Submission{
		ID:         uuid.New(),
		UserID:     userID,
		Netlist:    f.netlists.SingleEndedJSON(),
		Status:     string(netlist.StatusInvalid),
		Violations: raw,
	}
}
