package handler

import (
	"fmt"
	"net/http"

	"github.com/mfalcao/goldmatch/internal/domain"
	"github.com/mfalcao/goldmatch/internal/engine"
)

// BookHandler handles HTTP requests for book inspection endpoints.
type BookHandler struct {
	book *engine.Book
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(book *engine.Book) *BookHandler {
	return &BookHandler{book: book}
}

// orderResponse is the JSON form of one resting order.
type orderResponse struct {
	Side          string  `json:"side"`
	Price         float64 `json:"price"`
	Quantity      int64   `json:"quantity"`
	Contract      string  `json:"contract"`
	ProductCode   string  `json:"product_code"`
	MonthCode     string  `json:"month_code"`
	DeliveryMonth string  `json:"delivery_month"`
	Market        string  `json:"market"`
}

// bookResponse is the JSON response for GET /book.
type bookResponse struct {
	BuyOrders  []orderResponse `json:"buy_orders"`
	SellOrders []orderResponse `json:"sell_orders"`
}

// matchesResponse is the JSON response for GET /matches.
type matchesResponse struct {
	Matches map[string][]string `json:"matches"`
}

// GetBook handles GET /book.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, bookResponse{
		BuyOrders:  buildOrderResponses(h.book.BuyOrders()),
		SellOrders: buildOrderResponses(h.book.SellOrders()),
	})
}

// GetMatches handles GET /matches. With a ?contract= query parameter it
// returns that contract's match events only, 404 when the contract has
// none recorded.
func (h *BookHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	journal := h.book.Journal()

	if contract := r.URL.Query().Get("contract"); contract != "" {
		events := journal.Events(contract)
		if len(events) == 0 {
			WriteError(w, http.StatusNotFound, domain.ErrContractNotFound.Error(),
				fmt.Sprintf("No matches recorded for contract %q", contract))
			return
		}
		WriteJSON(w, http.StatusOK, matchesResponse{
			Matches: map[string][]string{contract: events},
		})
		return
	}

	matches := make(map[string][]string)
	for _, contract := range journal.Contracts() {
		matches[contract] = journal.Events(contract)
	}
	WriteJSON(w, http.StatusOK, matchesResponse{Matches: matches})
}

// GetReport handles GET /report, serving the same text report the
// driver prints to stdout.
func (h *BookHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.book.Render()))
}

func buildOrderResponses(orders []*domain.Order) []orderResponse {
	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		month, _ := o.DeliveryMonth()
		resp = append(resp, orderResponse{
			Side:          string(o.Side),
			Price:         o.Price,
			Quantity:      o.Quantity,
			Contract:      o.Contract,
			ProductCode:   o.ProductCode,
			MonthCode:     o.MonthCode,
			DeliveryMonth: month,
			Market:        o.Market,
		})
	}
	return resp
}
