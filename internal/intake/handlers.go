package intake

import (
	"errors"
	"net/http"
	"time"

	"github.com/emony/landing/internal/funnel"
	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/submit"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// maxBodyBytes bounds a lead body. Six fields at their longest fit well
// within it.
const maxBodyBytes = 16 << 10

// Handlers contains the HTTP handlers of the intake API.
type Handlers struct {
	sink submit.Submitter
}

// NewHandlers creates handlers storing leads through sink.
func NewHandlers(sink submit.Submitter) *Handlers {
	return &Handlers{sink: sink}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// leadRequest is the accepted body. It matches submit.Lead so the HTTP sink
// can post leads as they are.
type leadRequest struct {
	ID      string            `json:"id"`
	Variant string            `json:"variant"`
	Fields  map[string]string `json:"fields" binding:"required"`
}

// CreateLead validates a completed form and hands it to the sink.
func (h *Handlers) CreateLead(c *gin.Context) {
	kind, err := funnel.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	values, err := funnel.Clean(kind, funnel.Values(req.Fields))
	if err != nil {
		var tooLong *funnel.TooLongError
		if errors.As(err, &tooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "field too long", "field": tooLong.Field, "max": tooLong.Max})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if step := funnel.FirstIncompleteStep(kind, values); step != 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incomplete form", "step": step})
		return
	}

	lead := submit.NewLead(kind, req.Variant, values)
	if _, err := xid.FromString(req.ID); err == nil {
		lead.ID = req.ID
	}
	lead.CreatedAt = time.Now().UTC()

	receipt, err := h.sink.Submit(c.Request.Context(), lead)
	if err != nil {
		logger.Error("storing %s lead %s: %v", kind, lead.ID, err)
		status := http.StatusBadGateway
		if errors.Is(err, submit.ErrRejected) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": "could not store lead"})
		return
	}

	logger.Info("accepted %s lead %s (variant %q)", kind, lead.ID, lead.Variant)
	c.JSON(http.StatusCreated, receipt)
}
