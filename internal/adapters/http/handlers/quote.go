package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-request-service/internal/app"
)

// MessageQuoteCreated is returned with a newly created quote request.
const MessageQuoteCreated = "Quote request submitted successfully"

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// Create handles POST /api/quotes.
// Validates the body and stores a new quote request.
//
// @Summary Submit a quote request
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} dto.Envelope{data=dto.QuoteCreatedResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /api/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(MessageQuoteCreated, dto.NewQuoteCreatedResponse(quote)))
}

// List handles GET /api/quotes.
// Returns every stored quote request, most recent first.
//
// @Summary List quote requests
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.QuoteResponse}
// @Failure 500 {object} dto.Envelope
// @Router /api/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("", dto.NewQuoteListResponse(quotes)))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.Create)
	quotes.GET("", h.List)
}
