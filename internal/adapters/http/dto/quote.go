package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
)

// CreateQuoteRequest is the body of POST /quotes.
// Either email or phone must be given; formats are not checked.
type CreateQuoteRequest struct {
	Name    string  `json:"name"    validate:"required,notempty,max=200"`
	Email   string  `json:"email"   validate:"required_without=Phone,max=254"`
	Phone   string  `json:"phone"   validate:"required_without=Email,max=50"`
	Company string  `json:"company" validate:"max=200"`
	Service *string `json:"service" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,notempty,max=5000"`
}

// ToDomain converts the request to a domain.QuoteRequest, trimming
// surrounding whitespace. A blank service becomes nil.
func (r *CreateQuoteRequest) ToDomain() domain.QuoteRequest {
	return domain.QuoteRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Company: strings.TrimSpace(r.Company),
		Service: domain.NormalizeService(r.Service),
		Message: strings.TrimSpace(r.Message),
	}
}

// QuoteCreatedResponse is the data returned after a quote is created.
type QuoteCreatedResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Service *string `json:"service"`
}

// NewQuoteCreatedResponse converts a domain quote to the creation response.
func NewQuoteCreatedResponse(q *domain.Quote) QuoteCreatedResponse {
	return QuoteCreatedResponse{
		ID:      q.ID,
		Name:    q.Name,
		Service: q.Service,
	}
}

// QuoteResponse is a stored quote as returned by GET /quotes.
type QuoteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Service   *string   `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewQuoteResponse converts a domain quote to its wire representation.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Company:   q.Company,
		Service:   q.Service,
		Message:   q.Message,
		CreatedAt: q.CreatedAt.UTC(),
	}
}

// NewQuoteListResponse converts quotes to their wire representation.
// The result is never nil so an empty list encodes as [].
func NewQuoteListResponse(quotes []*domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}
