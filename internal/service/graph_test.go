package service_test

import (
	"encoding/json"
	"testing"

	apperrors "netlist-visualizer-backend/internal/errors"
	"netlist-visualizer-backend/internal/mocks"
	"netlist-visualizer-backend/internal/netlist"
	"netlist-visualizer-backend/internal/service"
	"netlist-visualizer-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newGraphService(t *testing.T, layouter netlist.Layouter) (*service.GraphService, *mocks.MockSubmissionRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSubmissionRepositoryInterface(ctrl)
	return service.NewGraphService(repo, layouter), repo
}

func TestForSubmission_ValidNetlist(t *testing.T) {
	svc, repo := newGraphService(t, nil)
	row := testutils.NewSubmissionFactory().Create("alice")
	repo.EXPECT().GetByID(row.ID).Return(row, nil)

	graph, err := svc.ForSubmission("alice", row.ID)
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, "U1", graph.Nodes[0].ID)
	assert.False(t, graph.Nodes[0].IsInvalid)
	assert.Len(t, graph.Edges, 2)

	// Default layout: four columns, both nodes on the first row.
	assert.Equal(t, netlist.Position{X: 0, Y: 0}, graph.Nodes[0].Position)
	assert.Equal(t, netlist.Position{X: 160, Y: 0}, graph.Nodes[1].Position)
}

func TestForSubmission_MarksElementsFromStoredViolations(t *testing.T) {
	svc, repo := newGraphService(t, nil)
	violations := []netlist.Violation{
		{Rule: netlist.RuleSingleEndedNet, Message: "m", Location: netlist.NetLocation("N1")},
		{Rule: netlist.RuleSingleEndedNet, Message: "m", Location: netlist.NetLocation("N2")},
	}
	row := testutils.NewSubmissionFactory().CreateInvalid("alice", violations)
	repo.EXPECT().GetByID(row.ID).Return(row, nil)

	graph, err := svc.ForSubmission("alice", row.ID)
	require.NoError(t, err)

	// Single-ended nets produce no edges; the nodes themselves are fine.
	assert.Len(t, graph.Nodes, 2)
	assert.Empty(t, graph.Edges)
	for _, node := range graph.Nodes {
		assert.False(t, node.IsInvalid)
	}
}

func TestForSubmission_StructurallyInvalidNetlist(t *testing.T) {
	svc, repo := newGraphService(t, nil)
	row := testutils.NewSubmissionFactory().Create("alice")
	row.Netlist = json.RawMessage(`{"components": []}`)
	row.Status = string(netlist.StatusInvalid)
	repo.EXPECT().GetByID(row.ID).Return(row, nil)

	_, err := svc.ForSubmission("alice", row.ID)
	assert.ErrorIs(t, err, apperrors.ErrGraphUnavailable)
}

func TestForSubmission_NotFound(t *testing.T) {
	svc, repo := newGraphService(t, nil)
	id := uuid.New()
	repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ForSubmission("alice", id)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestForSubmission_OwnershipMismatch(t *testing.T) {
	svc, repo := newGraphService(t, nil)
	row := testutils.NewSubmissionFactory().Create("bob")
	repo.EXPECT().GetByID(row.ID).Return(row, nil)

	_, err := svc.ForSubmission("alice", row.ID)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

type spreadLayout struct{}

func (spreadLayout) Apply(g netlist.Graph) netlist.Graph {
	nodes := make([]netlist.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	for i := range nodes {
		nodes[i].Position = netlist.Position{X: float64(i) * 1000}
	}
	return netlist.Graph{Nodes: nodes, Edges: g.Edges}
}

func TestForSubmission_UsesConfiguredLayouter(t *testing.T) {
	svc, repo := newGraphService(t, spreadLayout{})
	row := testutils.NewSubmissionFactory().Create("alice")
	repo.EXPECT().GetByID(row.ID).Return(row, nil)

	graph, err := svc.ForSubmission("alice", row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, graph.Nodes[1].Position.X)
}
