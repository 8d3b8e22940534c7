package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/analysis"
	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/similarity"
	"github.com/spigell/skill-matcher/internal/skills"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// Scorer is the part of analysis.Service the handlers use.
type Scorer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Report, error)
	Score(input extraction.ScoreInput) (*analysis.Report, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	scorer     Scorer
	normalizer *skills.Normalizer
	timeout    time.Duration
	version    string
	logger     *zap.Logger
}

// NewHandler creates a Handler. A zero timeout leaves the request context as is.
func NewHandler(scorer Scorer, normalizer *skills.Normalizer, timeout time.Duration, version string, logger *zap.Logger) *Handler {
	if normalizer == nil {
		normalizer = skills.DefaultNormalizer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		scorer:     scorer,
		normalizer: normalizer,
		timeout:    timeout,
		version:    version,
		logger:     logger,
	}
}

type errorResponse struct {
	Error     string                  `json:"error"`
	RequestID string                  `json:"requestId,omitempty"`
	Details   []extraction.FieldError `json:"details,omitempty"`
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "skill-matcher",
		"version": h.version,
	})
}

// Analyze scores free-text job and resume documents.
func (h *Handler) Analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	var req analysis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bodyStatus(err), err)
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	report, err := h.scorer.Analyze(ctx, req)
	if err != nil {
		h.fail(c, analyzeStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Score scores an already extracted match described by a JSON document.
func (h *Handler) Score(c *gin.Context) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		h.fail(c, bodyStatus(err), err)
		return
	}

	input, err := extraction.ParseScoreInput(data, h.normalizer)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	report, err := h.scorer.Score(input)
	if err != nil {
		h.fail(c, scoreStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)

	resp := errorResponse{
		Error:     err.Error(),
		RequestID: c.GetString(requestIDKey),
	}
	var shapeErr *extraction.ShapeError
	if errors.As(err, &shapeErr) {
		resp.Details = shapeErr.Errors
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err), zap.String(requestIDKey, resp.RequestID))
		if status == http.StatusInternalServerError {
			resp.Error = "internal error"
		}
	}

	c.AbortWithStatusJSON(status, resp)
}

func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func analyzeStatus(err error) int {
	switch {
	case errors.Is(err, analysis.ErrEmptyJob),
		errors.Is(err, analysis.ErrJobTooShort),
		errors.Is(err, analysis.ErrEmptyResume):
		return http.StatusBadRequest
	case errors.Is(err, analysis.ErrNoProvider):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, analysis.ErrEmbedding),
		errors.Is(err, similarity.ErrDimensionMismatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func scoreStatus(err error) int {
	if errors.Is(err, similarity.ErrDimensionMismatch) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
