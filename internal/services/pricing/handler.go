package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"pub-prices/internal/logger"
	"pub-prices/internal/models"
	"pub-prices/internal/pub"
	"pub-prices/internal/services/pricing/internal/validation"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// Handler handles HTTP requests for the pricing service
type Handler struct {
	service        *Service
	logger         *logger.Logger
	allowedOrigins []string
}

// NewHandler creates a new pricing handler
func NewHandler(service *Service, log *logger.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		service:        service,
		logger:         log,
		allowedOrigins: allowedOrigins,
	}
}

// SetupRoutes builds the router wrapped in CORS and request logging
func (h *Handler) SetupRoutes() http.Handler {
	router := httprouter.New()
	router.POST("/prices", h.CreateQuote)
	router.GET("/drinks", h.ListDrinks)
	router.GET("/drinks/:name", h.GetDrink)
	router.GET("/ingredients", h.ListIngredients)
	router.GET("/ingredients/:name", h.GetIngredient)
	router.GET("/health", h.HealthCheck)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeErrorResponse(w, http.StatusNotFound, "Not found", requestIDFrom(r.Context()))
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", requestIDFrom(r.Context()))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	return h.withLogging(c.Handler(router))
}

// CreateQuote handles POST /prices requests
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := requestIDFrom(r.Context())

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return
	}

	var req models.QuoteRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := h.service.Quote(ctx, &req, requestID)
	if err != nil {
		status := statusFor(err)
		message := clientMessage(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("quote_failed", "Failed to price quote", requestID, err, nil)
			message = "Internal server error"
		}
		h.writeErrorResponse(w, status, message, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, response, requestID)
}

// ListDrinks handles GET /drinks requests
func (h *Handler) ListDrinks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, h.service.Menu(), requestIDFrom(r.Context()))
}

// GetDrink handles GET /drinks/:name requests
func (h *Handler) GetDrink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := requestIDFrom(r.Context())

	entry, err := h.service.MenuEntry(ps.ByName("name"))
	if err != nil {
		h.writeErrorResponse(w, statusFor(err), err.Error(), requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, entry, requestID)
}

// ListIngredients handles GET /ingredients requests
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, h.service.Ingredients(), requestIDFrom(r.Context()))
}

// GetIngredient handles GET /ingredients/:name requests
func (h *Handler) GetIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := requestIDFrom(r.Context())

	entry, err := h.service.Ingredient(ps.ByName("name"))
	if err != nil {
		h.writeErrorResponse(w, statusFor(err), err.Error(), requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, entry, requestID)
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pricing-service",
	}

	h.writeJSON(w, http.StatusOK, response, requestIDFrom(r.Context()))
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, pub.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, pub.ErrNoSuchDrink), errors.Is(err, ErrNoSuchIngredient):
		return http.StatusNotFound
	case errors.Is(err, pub.ErrTooManyDrinks), errors.Is(err, pub.ErrPriceOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage strips the service's wrapping from errors the caller caused
func clientMessage(err error) string {
	var (
		verr    validation.ValidationError
		noSuch  *pub.NoSuchDrinkError
		tooMany *pub.TooManyDrinksError
		invalid *pub.InvalidAmountError
		over    *pub.PriceOverflowError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &noSuch):
		return noSuch.Error()
	case errors.As(err, &tooMany):
		return tooMany.Error()
	case errors.As(err, &invalid):
		return invalid.Error()
	case errors.As(err, &over):
		return over.Error()
	default:
		return err.Error()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", requestID, err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	h.writeJSON(w, statusCode, errorResponse, requestID)
}

// withLogging tags each request with an ID and logs its start and completion
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set("X-Request-ID", requestID)

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.Header.Get("User-Agent"),
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
			})
	})
}

func requestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
