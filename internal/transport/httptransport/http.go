package httptransport

import (
	"context"
	"log"
	"net/http"
	"time"

	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/mstampfer/coin-crab/internal/ports/errcode"
	"github.com/mstampfer/coin-crab/internal/service/prices"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// PricesService is the read-side the HTTP API exposes.
type PricesService interface {
	Latest(ctx context.Context) (prices.LatestResult, error)
	Historical(ctx context.Context, symbol string, tf types.Timeframe) (types.HistoricalResult, error)
}

// LatestResponse is the /api/crypto-prices DTO. last_updated is RFC3339
// or "Never" before the first fetch completes.
type LatestResponse struct {
	Data        []types.CryptoCurrency `json:"data"`
	LastUpdated string                 `json:"last_updated"`
	Cached      bool                   `json:"cached"`
}

// MappingReader exposes the symbol-to-id mapping loaded at startup.
type MappingReader interface {
	Mapping() (map[string]int64, bool)
}

// PricesHandler serves the REST API mobile clients fall back to when
// MQTT is unreachable.
type PricesHandler struct {
	logger  *slog.Logger
	svc     PricesService
	mapping MappingReader
	timeout time.Duration
}

// NewPricesHandler builds the handler. mapping may be nil, the mapping
// endpoint then reports not loaded.
func NewPricesHandler(logger *slog.Logger, svc PricesService, mapping MappingReader, timeout time.Duration) *PricesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &PricesHandler{
		logger:  logger,
		svc:     svc,
		mapping: mapping,
		timeout: timeout,
	}
}

func (h *PricesHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/api/crypto-prices", h.GetLatest)
	r.GET("/api/historical/:symbol", h.GetHistorical)
	r.GET("/api/cmc-mapping", h.GetMapping)
	r.GET("/health", h.Health)
}

// GetLatest always answers 200. Before the first fetch the payload is an
// empty list so clients can poll without special-casing startup.
func (h *PricesHandler) GetLatest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.svc.Latest(ctx)
	if err != nil {
		if FromServiceError(err) != errcode.NoPrices {
			h.logger.Error("Latest failed",
				slog.String("op", "GetLatest"),
				slog.String("error", err.Error()),
			)
		}
		return c.JSON(http.StatusOK, LatestResponse{
			Data:        []types.CryptoCurrency{},
			LastUpdated: "Never",
			Cached:      false,
		})
	}

	return c.JSON(http.StatusOK, LatestResponse{
		Data:        res.Data,
		LastUpdated: res.LastUpdated.UTC().Format(time.RFC3339),
		Cached:      res.Cached,
	})
}

// GetHistorical mirrors the MQTT payload contract: service failures come
// back as 200 with success=false so every consumer parses one shape.
// Only a missing timeframe parameter is a 400.
func (h *PricesHandler) GetHistorical(c echo.Context) error {
	symbol := c.Param("symbol")
	timeframe := c.QueryParam("timeframe")
	if timeframe == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "timeframe_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.svc.Historical(ctx, symbol, types.Timeframe(timeframe))
	if err != nil {
		code := FromServiceError(err)
		if code == errcode.Internal {
			h.logger.Error("Historical failed",
				slog.String("op", "GetHistorical"),
				slog.String("symbol", symbol),
				slog.String("error", err.Error()),
			)
		}
		return c.JSON(http.StatusOK, types.HistoricalResult{
			Success:   false,
			Data:      []types.HistoricalPoint{},
			Error:     errorMessage(code),
			Symbol:    symbol,
			Timeframe: timeframe,
		})
	}

	return c.JSON(http.StatusOK, res)
}

// GetMapping serves the symbol-to-id mapping loaded at startup. Until
// the load completes the payload is success=false with an empty map.
func (h *PricesHandler) GetMapping(c echo.Context) error {
	if h.mapping != nil {
		if m, ok := h.mapping.Mapping(); ok {
			return c.JSON(http.StatusOK, echo.Map{
				"success": true,
				"data":    m,
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": false,
		"data":    map[string]int64{},
		"error":   "Mapping not loaded",
	})
}

func (h *PricesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func errorMessage(code errcode.Code) string {
	switch code {
	case errcode.UnknownSymbol:
		return "Invalid symbol"
	case errcode.NoData:
		return "No historical data available"
	case errcode.BadTimeframe:
		return "Invalid timeframe"
	case errcode.BadRequest:
		return "Invalid request"
	default:
		return "Internal error"
	}
}
