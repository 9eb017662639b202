package api

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/partfoundry/quoting/pkg/application/dto"
	"github.com/partfoundry/quoting/pkg/application/services"
	"github.com/partfoundry/quoting/pkg/domain/entities"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// QuoteHandler exposes the quoting engine over HTTP.
type QuoteHandler struct {
	quoter *services.QuoteService
}

// NewQuoteHandler creates a handler backed by the given service.
func NewQuoteHandler(quoter *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoter: quoter}
}

// Register attaches the quote routes to an echo instance.
func (h *QuoteHandler) Register(e *echo.Echo) {
	e.POST("/quotes", h.CreateQuote)
	e.GET("/healthz", h.Health)
}

// quoteRequestBody is the wire shape of a quote request.
type quoteRequestBody struct {
	Metrics       entities.GeometryMetrics `json:"metrics"`
	Quantity      int64                    `json:"quantity"`
	ShippingTier  string                   `json:"shipping_tier,omitempty"`
	ExpeditedDays string                   `json:"expedited_days,omitempty"`
}

// errorResponse is the wire shape of a request failure.
type errorResponse struct {
	Error string `json:"error"`
}

// CreateQuote handles POST /quotes.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var body quoteRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	request := entities.QuoteRequest{
		Metrics:  body.Metrics,
		Quantity: body.Quantity,
	}
	if body.ShippingTier != "" {
		tier, err := entities.ParseShippingTier(body.ShippingTier)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		request.ShippingTier = &tier
	}
	if body.ExpeditedDays != "" {
		option, err := entities.ParseExpeditedOption(body.ExpeditedDays)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		request.ExpeditedDays = option
	}

	start := time.Now()
	result, err := h.quoter.Generate(c.Request().Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidGeometry),
			errors.Is(err, entities.ErrInvalidQuantity),
			errors.Is(err, entities.ErrConflictingShipping):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, entities.ErrNoFittingBlock):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		default:
			logger.Error().Err(err).Msg("quote generation failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}

	logger.Info().
		Int64("quantity", result.Quantity).
		Str("shipping_tier", result.ShippingTier.String()).
		Str("per_unit", result.PerUnitCost.StringFixed(2)).
		Int("lead_time_days", result.LeadTimeDays).
		Dur("duration", time.Since(start)).
		Msg("quote generated")

	return c.JSON(http.StatusOK, dto.ExportQuote(result))
}

// Health handles GET /healthz.
func (h *QuoteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
