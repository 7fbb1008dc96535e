// Package httpapi exposes the quoting pipeline over HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/application/service"
	"github.com/seguro/quotes-service/internal/domain/domainerr"
	"github.com/seguro/quotes-service/internal/domain/entity"
)

// IdempotencyKeyHeader carries the caller-supplied deduplication token on
// synchronous quote creation.
const IdempotencyKeyHeader = "X-Idempotency-Key"

const codeInvalidRequest = "INVALID_REQUEST"

// Handler serves the quote and policy endpoints.
type Handler struct {
	quotes   *service.QuoteService
	policies *service.PolicyService
	logger   *zap.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(quotes *service.QuoteService, policies *service.PolicyService, logger *zap.Logger) *Handler {
	return &Handler{quotes: quotes, policies: policies, logger: logger}
}

// RegisterRoutes mounts all endpoints on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("", h.CreateQuote)
		quotes.POST("/async", h.CreateQuoteAsync)
		quotes.GET("/:id", h.GetQuote)
		quotes.GET("", h.ListQuotes)
	}

	policies := r.Group("/policies")
	{
		policies.POST("", h.IssuePolicy)
		policies.GET("/:id", h.GetPolicy)
		policies.GET("", h.ListPolicies)
	}
}

// CreateQuote runs the synchronous pipeline; the caller waits for the full
// decision.
func (h *Handler) CreateQuote(c *gin.Context) {
	app, ok := h.bindApplication(c)
	if !ok {
		return
	}

	quote, derr := h.quotes.CreateQuote(c.Request.Context(), app, c.GetHeader(IdempotencyKeyHeader))
	if derr != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: derr.Code, Message: derr.Message})
		return
	}

	c.JSON(http.StatusCreated, QuoteResponseFrom(quote))
}

// CreateQuoteAsync persists a CREATED placeholder and returns immediately;
// a well-formed envelope never yields an error.
func (h *Handler) CreateQuoteAsync(c *gin.Context) {
	app, ok := h.bindApplication(c)
	if !ok {
		return
	}

	quote := h.quotes.CreateQuoteAsync(c.Request.Context(), app)
	c.JSON(http.StatusCreated, QuoteResponseFrom(quote))
}

// GetQuote fetches a quote by id.
func (h *Handler) GetQuote(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	quote, derr := h.quotes.GetQuoteByID(id)
	if derr != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: derr.Code, Message: derr.Message})
		return
	}

	c.JSON(http.StatusOK, QuoteResponseFrom(quote))
}

// ListQuotes returns all quotes in store-iteration order.
func (h *Handler) ListQuotes(c *gin.Context) {
	quotes := h.quotes.ListQuotes()
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteResponseFrom(q))
	}
	c.JSON(http.StatusOK, out)
}

// IssuePolicy binds a policy to an approved, unexpired quote.
func (h *Handler) IssuePolicy(c *gin.Context) {
	var req IssuePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Message: err.Error()})
		return
	}

	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Message: "quoteId must be a UUID"})
		return
	}

	policy, derr := h.policies.IssuePolicy(c.Request.Context(), quoteID)
	if derr != nil {
		status := http.StatusBadRequest
		if derr == domainerr.ErrQuoteNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Code: derr.Code, Message: derr.Message})
		return
	}

	c.JSON(http.StatusCreated, PolicyResponseFrom(policy))
}

// GetPolicy fetches a policy by id.
func (h *Handler) GetPolicy(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	policy, derr := h.policies.GetPolicyByID(id)
	if derr != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: derr.Code, Message: derr.Message})
		return
	}

	c.JSON(http.StatusOK, PolicyResponseFrom(policy))
}

// ListPolicies returns all issued policies.
func (h *Handler) ListPolicies(c *gin.Context) {
	policies := h.policies.ListPolicies()
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, PolicyResponseFrom(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) bindApplication(c *gin.Context) (entity.Application, bool) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Message: err.Error()})
		return entity.Application{}, false
	}

	application, err := req.ToApplication()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Message: err.Error()})
		return entity.Application{}, false
	}

	return application, true
}

func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: codeInvalidRequest, Message: "id must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
