package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"osg-reconciler/internal/config"
	"osg-reconciler/internal/domain"
	"osg-reconciler/internal/usecase"
)

const correlationHeader = "x-correlation-id"

// Reconciler runs one reconciliation over two stored sheets.
type Reconciler interface {
	Reconcile(ctx context.Context, warrantyPath, purchasePath string) (*domain.ReconciliationReport, error)
}

// ReportWriter renders a report as a workbook.
type ReportWriter interface {
	Write(w io.Writer, report *domain.ReconciliationReport) error
}

// ClaimService submits and lists warranty claims.
type ClaimService interface {
	Submit(ctx context.Context, req domain.ClaimRequest) (domain.ClaimResult, error)
	ListClaims(ctx context.Context) ([]domain.TrackingRecord, error)
}

// Handler holds the collaborators behind the HTTP routes. Customers and Claims
// may be nil, in which case their routes are not registered.
type Handler struct {
	Reconciler Reconciler
	Writer     ReportWriter
	Customers  usecase.CustomerFinder
	Claims     ClaimService
	Logger     *logrus.Logger
}

// NewRouter builds the gin engine with CORS, request logging and recovery.
func NewRouter(h *Handler, cfg config.HTTPConfig, production bool) *gin.Engine {
	if h.Logger == nil {
		h.Logger = logrus.StandardLogger()
	}

	r := gin.New()
	if cfg.MaxUploadMB > 0 {
		r.MaxMultipartMemory = cfg.MaxUploadMB << 20
	}
	r.Use(correlationID())
	r.Use(requestLogger(h.Logger))
	r.Use(gin.Recovery())

	if production && len(cfg.AllowedOrigins) == 0 {
		// same-origin only; cors.New rejects a config with every origin disabled
		h.Logger.Warn("CORS_ALLOWED_ORIGINS is empty, cross-origin requests are not allowed")
	} else {
		r.Use(cors.New(corsConfig(cfg, production)))
	}

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	process := r.Group("/process", limitBody(cfg.MaxUploadMB))
	process.POST("", h.processWorkbook)
	process.POST("/summary", h.processSummary)

	if h.Customers != nil {
		r.GET("/customers/:phone", h.findCustomer)
	}
	if h.Claims != nil {
		r.POST("/claims", h.submitClaim)
		r.GET("/claims", h.listClaims)
	}

	r.NoRoute(func(c *gin.Context) {
		RespondError(c, http.StatusNotFound, "not_found", errRouteNotFound)
	})
	return r
}

func corsConfig(cfg config.HTTPConfig, production bool) cors.Config {
	corsCfg := cors.DefaultConfig()
	if production {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AddAllowMethods("GET", "POST", "OPTIONS")
	corsCfg.AddAllowHeaders("Origin", "Content-Type", "Authorization", correlationHeader)
	corsCfg.AddExposeHeaders("Content-Length", "Content-Disposition")
	return corsCfg
}

func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(correlationHeader)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(correlationHeader, cid)
		c.Header(correlationHeader, cid)
		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"status":         c.Writer.Status(),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"latency":        time.Since(start).String(),
			"correlation_id": c.GetString(correlationHeader),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}

// limitBody caps request bodies at mb megabytes; zero disables the cap.
func limitBody(mb int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mb > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, mb<<20)
		}
		c.Next()
	}
}
