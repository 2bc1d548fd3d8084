package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"netlist-visualizer-backend/internal/auth"
	apperrors "netlist-visualizer-backend/internal/errors"
	"netlist-visualizer-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploaded files larger than this are rejected outright.
const maxUploadBytes = 8 << 20

// NetlistHandler handles HTTP requests for netlist submissions
type NetlistHandler struct {
	submissions service.SubmissionServiceInterface
	graphs      service.GraphServiceInterface
}

// NewNetlistHandler creates a new netlist handler
func NewNetlistHandler(submissions service.SubmissionServiceInterface, graphs service.GraphServiceInterface) *NetlistHandler {
	return &NetlistHandler{
		submissions: submissions,
		graphs:      graphs,
	}
}

// Upload handles POST /netlists
// @Summary Upload a netlist
// @Description Upload a netlist either as a raw JSON body or as a multipart form file field named "file". Both forms yield the same parsed value. The netlist is validated and persisted whether it passes or not; the response carries the validation summary.
// @Tags netlists
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Netlist JSON file (multipart form)"
// @Success 201 {object} service.UploadSummary "Submission stored"
// @Failure 400 {object} map[string]interface{} "No JSON payload or input is not JSON"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Security BearerAuth
// @Router /netlists [post]
func (h *NetlistHandler) Upload(c *gin.Context) {
	raw, err := readPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.submissions.Upload(auth.CurrentUser(c), raw)
	if err != nil {
		switch {
		case apperrors.IsMalformedInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsStorageUnavailable(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// readPayload extracts the raw JSON document from either transport form.
// The core does not care which one was used.
func readPayload(c *gin.Context) ([]byte, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
		if err != nil {
			return nil, errors.New("failed to read request body")
		}
		return raw, nil
	}

	file, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("no JSON payload found: send a JSON body or a \"file\" form field")
	}
	if file.Size > maxUploadBytes {
		return nil, errors.New("uploaded file too large")
	}
	f, err := file.Open()
	if err != nil {
		return nil, errors.New("failed to open uploaded file")
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, errors.New("failed to read uploaded file")
	}
	return raw, nil
}

// List handles GET /netlists
// @Summary List my submissions
// @Description Return a paginated list of the current user's submissions, newest first.
// @Tags netlists
// @Produce json
// @Param limit query int false "Max items to return (1-100, default 20)"
// @Param skip query int false "Items to skip (offset)"
// @Success 200 {object} service.SubmissionList "Page of submissions"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Security BearerAuth
// @Router /netlists [get]
func (h *NetlistHandler) List(c *gin.Context) {
	limit, err := intQuery(c, "limit", service.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter"})
		return
	}

	list, err := h.submissions.List(auth.CurrentUser(c), limit, skip)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	value := c.Query(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

// Get handles GET /netlists/:id
// @Summary Get a single submission
// @Description Fetch the full netlist document and its validation report, but only if the submission belongs to the current user.
// @Tags netlists
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} service.SubmissionDetail "Stored submission"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID format"
// @Failure 404 {object} map[string]interface{} "Submission not found or access denied"
// @Security BearerAuth
// @Router /netlists/{id} [get]
func (h *NetlistHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	detail, err := h.submissions.Get(auth.CurrentUser(c), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Graph handles GET /netlists/:id/graph
// @Summary Get the graph projection of a submission
// @Description Derive the node/edge view of a stored netlist, with invalid elements marked and positions assigned by the layout engine. Recomputed on every read.
// @Tags netlists
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} netlist.Graph "Derived graph"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID format"
// @Failure 404 {object} map[string]interface{} "Submission not found or access denied"
// @Failure 409 {object} map[string]interface{} "Netlist is structurally invalid; no graph exists"
// @Security BearerAuth
// @Router /netlists/{id}/graph [get]
func (h *NetlistHandler) Graph(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	graph, err := h.graphs.ForSubmission(auth.CurrentUser(c), id)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found or access denied"})
		case errors.Is(err, apperrors.ErrGraphUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, graph)
}
