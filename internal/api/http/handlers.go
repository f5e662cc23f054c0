package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"libraria-backend/internal/logger"
	"libraria-backend/internal/service"
)

// Handler exposes the library services as a JSON API. It is thin plumbing:
// all business rules live in the services.
type Handler struct {
	catalog   service.CatalogService
	borrowing service.BorrowingService
	fees      service.LateFeeService
	status    service.StatusService
	payments  service.PaymentService
}

func NewHandler(
	catalog service.CatalogService,
	borrowing service.BorrowingService,
	fees service.LateFeeService,
	status service.StatusService,
	payments service.PaymentService,
) *Handler {
	return &Handler{
		catalog:   catalog,
		borrowing: borrowing,
		fees:      fees,
		status:    status,
		payments:  payments,
	}
}

// RegisterRoutes mounts all API routes on the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/books", h.handleAddBook).Methods(http.MethodPost)
	api.HandleFunc("/books", h.handleListBooks).Methods(http.MethodGet)
	api.HandleFunc("/books/search", h.handleSearchBooks).Methods(http.MethodGet)
	api.HandleFunc("/borrow", h.handleBorrow).Methods(http.MethodPost)
	api.HandleFunc("/return", h.handleReturn).Methods(http.MethodPost)
	api.HandleFunc("/patrons/{patron_id}/late_fee", h.handleLateFee).Methods(http.MethodGet)
	api.HandleFunc("/patrons/{patron_id}/status", h.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/payments/late_fees", h.handlePayLateFees).Methods(http.MethodPost)
	api.HandleFunc("/payments/refund", h.handleRefund).Methods(http.MethodPost)
}

type addBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int32  `json:"total_copies"`
}

type loanRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int32  `json:"book_id"`
}

type refundRequest struct {
	TransactionID string `json:"transaction_id"`
	AmountCents   int32  `json:"amount_cents"`
}

type resultResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

func (h *Handler) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid request body"})
		return
	}
	ok, msg := h.catalog.AddBook(r.Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	writeJSON(w, statusFor(ok), resultResponse{Success: ok, Message: msg})
}

func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.ListBooks(r.Context()))
}

func (h *Handler) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	field := r.URL.Query().Get("field")
	writeJSON(w, http.StatusOK, h.catalog.SearchBooks(r.Context(), term, field))
}

func (h *Handler) handleBorrow(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid request body"})
		return
	}
	ok, msg := h.borrowing.BorrowBook(r.Context(), req.PatronID, req.BookID)
	writeJSON(w, statusFor(ok), resultResponse{Success: ok, Message: msg})
}

func (h *Handler) handleReturn(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid request body"})
		return
	}
	ok, msg := h.borrowing.ReturnBook(r.Context(), req.PatronID, req.BookID)
	writeJSON(w, statusFor(ok), resultResponse{Success: ok, Message: msg})
}

func (h *Handler) handleLateFee(w http.ResponseWriter, r *http.Request) {
	patronID := mux.Vars(r)["patron_id"]
	bookID, err := strconv.ParseInt(r.URL.Query().Get("book_id"), 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid book_id"})
		return
	}
	writeJSON(w, http.StatusOK, h.fees.CalculateLateFee(r.Context(), patronID, int32(bookID)))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	patronID := mux.Vars(r)["patron_id"]
	report := h.status.GetPatronStatusReport(r.Context(), patronID)
	code := http.StatusOK
	if report.Error != "" {
		code = http.StatusBadRequest
	}
	writeJSON(w, code, report)
}

func (h *Handler) handlePayLateFees(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid request body"})
		return
	}
	ok, msg, transactionID := h.payments.PayLateFees(r.Context(), req.PatronID, req.BookID)
	writeJSON(w, statusFor(ok), resultResponse{Success: ok, Message: msg, TransactionID: transactionID})
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Message: "Invalid request body"})
		return
	}
	ok, msg := h.payments.RefundLateFeePayment(r.Context(), req.TransactionID, req.AmountCents)
	writeJSON(w, statusFor(ok), resultResponse{Success: ok, Message: msg})
}

func statusFor(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
