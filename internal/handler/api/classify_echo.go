package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"SignalEngine/internal/domain/models"
	domsvc "SignalEngine/internal/domain/service"
	svcmetrics "SignalEngine/internal/service/metrics"
	"SignalEngine/internal/service/ratelimit"
	"SignalEngine/internal/usecase"
	xhttp "SignalEngine/pkg/http"
	xlogger "SignalEngine/pkg/logger"
)

// ClassifyHandler serves the classification endpoints.
type ClassifyHandler struct {
	logger     *xlogger.Logger
	classifier *usecase.Classifier
	snapshot   *usecase.SnapshotUseCase
	rl         *ratelimit.Limiter
}

func NewClassifyHandler(logger *xlogger.Logger, classifier *usecase.Classifier, snapshot *usecase.SnapshotUseCase, rl *ratelimit.Limiter) *ClassifyHandler {
	svcmetrics.Register()
	return &ClassifyHandler{logger: logger, classifier: classifier, snapshot: snapshot, rl: rl}
}

func (h *ClassifyHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api", h.rateLimit)
	g.POST("/classify/confidence", h.Confidence)
	g.POST("/classify/regime", h.Regime)
	g.POST("/classify/progress", h.Progress)
	g.POST("/classify/trend", h.Trend)
	g.POST("/classify/dashboard", h.Dashboard)
	g.GET("/dashboard/:symbol", h.Snapshot)
	g.GET("/dashboard", h.Snapshots)
}

func (h *ClassifyHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *ClassifyHandler) Confidence(c echo.Context) error {
	defer observe("confidence", time.Now())
	req := &models.ConfidenceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res := h.classifier.Confidence(req.Horizon, req.Row)
	return xhttp.SuccessResponse(c, models.ConfidenceResponse{
		ConfidenceRating: res.Rating,
		Color:            res.Color,
		Summary:          res.Summary,
	})
}

func (h *ClassifyHandler) Regime(c echo.Context) error {
	defer observe("regime", time.Now())
	req := &models.RegimeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.classifier.Regime(req.RawStrength, req.RegimeLabel))
}

func (h *ClassifyHandler) Progress(c echo.Context) error {
	defer observe("progress", time.Now())
	req := &models.ProgressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res := h.classifier.Progress(*req.Price, *req.Midpoint, *req.Target, req.Direction == "high")
	return xhttp.SuccessResponse(c, res)
}

func (h *ClassifyHandler) Trend(c echo.Context) error {
	defer observe("trend", time.Now())
	req := &models.TrendRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, models.TrendResponse{State: h.classifier.Trend(req.Levels, req.Price)})
}

// Dashboard classifies a payload supplied in the body. ?regime= overrides its regime label.
func (h *ClassifyHandler) Dashboard(c echo.Context) error {
	defer observe("dashboard", time.Now())
	req := &models.DashboardPayload{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.classifier.ClassifyDashboard(*req, c.QueryParam("regime")))
}

func (h *ClassifyHandler) Snapshot(c echo.Context) error {
	defer observe("snapshot", time.Now())
	req := &models.SnapshotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.snapshot.GetSnapshot(c.Request().Context(), req.Symbol, req.Regime)
	if err != nil {
		log := h.logger.Error
		if errors.Is(err, context.Canceled) {
			log = h.logger.Debug
		}
		log("classify.snapshot usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, toAppError(err, req.Symbol))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

// Snapshots classifies a comma-separated ?symbols= list.
func (h *ClassifyHandler) Snapshots(c echo.Context) error {
	defer observe("snapshots", time.Now())
	req := &models.SnapshotsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.snapshot.GetSnapshots(c.Request().Context(), strings.Split(req.Symbols, ","), req.Regime)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithField("symbols"))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ClassifyHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.rl == nil || h.rl.Allow(c.RealIP()) {
			return next(c)
		}
		svcmetrics.RateLimited.WithLabelValues(c.Path()).Inc()
		c.Response().Header().Set("Retry-After", strconv.Itoa(1))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
	}
}

func toAppError(err error, symbol string) *xhttp.AppError {
	switch {
	case errors.Is(err, domsvc.ErrPayloadNotFound):
		return xhttp.NotFoundErrorf("no dashboard for %s", symbol).WithParam("symbol", symbol).WithError(err)
	case errors.Is(err, context.Canceled):
		return xhttp.ClientClosedError("request canceled").WithError(err)
	case errors.Is(err, domsvc.ErrUpstreamUnavailable), errors.Is(err, context.DeadlineExceeded):
		return xhttp.ServiceUnavailableError("analytics backend unavailable").WithError(err)
	default:
		return xhttp.InternalError(http.StatusText(http.StatusInternalServerError)).WithError(err)
	}
}

func observe(endpoint string, start time.Time) {
	svcmetrics.ClassifyLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
