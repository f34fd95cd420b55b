package api

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"SqueezeWatch/internal/domain/models"
	"SqueezeWatch/internal/usecase"
	"SqueezeWatch/pkg/config"
	xhttp "SqueezeWatch/pkg/http"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"
)

const serviceVersion = "1.0.0"

// SqueezeHandler exposes the probability, scanner, data and webhook endpoints.
type SqueezeHandler struct {
	logger     *xlogger.Logger
	specialist *usecase.SpecialistCalculator
	universal  *usecase.UniversalCalculator
	scanner    *usecase.MarketScanner
	tickers    []string
}

func NewSqueezeHandler(
	cfg *config.Config,
	logger *xlogger.Logger,
	specialist *usecase.SpecialistCalculator,
	universal *usecase.UniversalCalculator,
	scanner *usecase.MarketScanner,
) *SqueezeHandler {
	return &SqueezeHandler{
		logger:     logger,
		specialist: specialist,
		universal:  universal,
		scanner:    scanner,
		tickers:    cfg.Specialist.Tickers,
	}
}

func (h *SqueezeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	g := e.Group("/api")
	for _, ticker := range h.tickers {
		g.GET("/"+strings.ToLower(ticker)+"/probability", h.specialistProbability(ticker))
	}
	g.GET("/specialist/:ticker/cycles", h.UpcomingCycles)
	g.GET("/specialist/:ticker/warrants", h.WarrantStatus)
	g.GET("/universal/:ticker/probability", h.UniversalProbability)
	g.GET("/universal/:ticker/metrics", h.TickerMetrics)
	g.GET("/scanner/top", h.ScannerTop)
	g.GET("/scanner/ticker/:ticker", h.ScannerAnalyze)
	g.GET("/scanner/refresh", h.ScannerRefresh)
	g.GET("/compare", h.Compare)
	g.GET("/data/:ticker/price", h.Price)
	g.GET("/data/:ticker/short-interest", h.ShortInterest)
	g.POST("/webhook/cycle", h.CycleWebhook)

	e.RouteNotFound("/*", h.NotFound)
}

func (h *SqueezeHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"service": "squeeze-watch",
		"version": serviceVersion,
		"status":  "online",
		"modes": map[string]interface{}{
			"specialist": h.tickers,
			"universal":  "any ticker",
			"scanner":    "configured universe",
		},
	})
}

func (h *SqueezeHandler) Health(c echo.Context) error {
	_, lastScan := h.scanner.LastScan()
	resp := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"data_sources": map[string]string{
			"quotes":         "provider with static fallback",
			"short_interest": "provider with placeholder estimates",
			"cycles":         "internal engine",
		},
	}
	if !lastScan.IsZero() {
		resp["last_scan"] = lastScan
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *SqueezeHandler) specialistProbability(ticker string) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := h.specialist.Probability(c.Request().Context(), ticker)
		if err != nil {
			h.logger.Error("specialist probability error",
				xlogger.String("ticker", ticker), xlogger.Error(err))
			return xhttp.AppErrorResponse(c, err)
		}
		return xhttp.SuccessResponse(c, res)
	}
}

func (h *SqueezeHandler) UpcomingCycles(c echo.Context) error {
	ticker := util.NormalizeTicker(c.Param("ticker"))
	if !h.specialist.Supports(ticker) {
		return xhttp.AppErrorResponse(c,
			xhttp.BadRequestErrorf("cycle tracking is not available for %s", ticker))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"ticker":          ticker,
		"upcoming_cycles": h.specialist.UpcomingCycles(),
	})
}

func (h *SqueezeHandler) WarrantStatus(c echo.Context) error {
	ticker := util.NormalizeTicker(c.Param("ticker"))
	if !h.specialist.HasWarrants(ticker) {
		return xhttp.AppErrorResponse(c,
			xhttp.BadRequestErrorf("no warrants are tracked for %s", ticker))
	}
	res, err := h.specialist.WarrantStatus(c.Request().Context())
	if err != nil {
		h.logger.Error("warrant status error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) UniversalProbability(c echo.Context) error {
	ticker := c.Param("ticker")
	res, err := h.universal.Probability(c.Request().Context(), ticker)
	if err != nil {
		h.logger.Error("universal probability error",
			xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) TickerMetrics(c echo.Context) error {
	ticker := c.Param("ticker")
	res, err := h.universal.Metrics(c.Request().Context(), ticker)
	if err != nil {
		h.logger.Error("ticker metrics error",
			xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) ScannerTop(c echo.Context) error {
	req := &models.ScannerTopRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.scanner.Scan(c.Request().Context(), req.Limit, req.MinScore)
	if err != nil {
		h.logger.Error("scanner error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"count":      len(res),
		"candidates": res,
	})
}

func (h *SqueezeHandler) ScannerAnalyze(c echo.Context) error {
	ticker := c.Param("ticker")
	res, err := h.scanner.Analyze(c.Request().Context(), ticker)
	if err != nil {
		h.logger.Error("scanner analyze error",
			xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) ScannerRefresh(c echo.Context) error {
	if err := h.scanner.Refresh(c.Request().Context()); err != nil {
		h.logger.Error("scanner refresh error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	_, lastScan := h.scanner.LastScan()
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":       "refreshed",
		"refreshed_at": lastScan,
	})
}

func (h *SqueezeHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.universal.Compare(c.Request().Context(), req.Ticker1, req.Ticker2)
	if err != nil {
		h.logger.Error("compare error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) Price(c echo.Context) error {
	ticker := c.Param("ticker")
	res, err := h.universal.Quote(c.Request().Context(), ticker)
	if err != nil {
		h.logger.Error("price error",
			xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) ShortInterest(c echo.Context) error {
	ticker := c.Param("ticker")
	res, err := h.universal.ShortInterest(c.Request().Context(), ticker)
	if err != nil {
		h.logger.Error("short interest error",
			xlogger.String("ticker", ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SqueezeHandler) CycleWebhook(c echo.Context) error {
	req := &models.CycleWebhookRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if _, ok := util.ParseTime(req.Date); !ok {
		return xhttp.AppErrorResponse(c,
			xhttp.BadRequestErrorf("date %q is not a recognized date format", req.Date))
	}
	event := h.specialist.RecordObservation(*req)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status": "received",
		"event":  event,
	})
}

func (h *SqueezeHandler) NotFound(c echo.Context) error {
	return xhttp.NotFoundResponse(c, map[string]interface{}{
		"error": "endpoint not found",
		"endpoints": []string{
			"/", "/health", "/metrics",
			"/api/{specialist}/probability",
			"/api/specialist/{ticker}/cycles",
			"/api/specialist/{ticker}/warrants",
			"/api/universal/{ticker}/probability",
			"/api/universal/{ticker}/metrics",
			"/api/scanner/top",
			"/api/scanner/ticker/{ticker}",
			"/api/scanner/refresh",
			"/api/compare",
			"/api/data/{ticker}/price",
			"/api/data/{ticker}/short-interest",
			"/api/webhook/cycle",
		},
	})
}
