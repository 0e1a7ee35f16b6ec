package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cms_archiver/internal/domain"
)

const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second

	actorHeader  = "X-Actor"
	defaultActor = "anonymous"
)

// PageArchiver moves a single page from the live store into the archive.
type PageArchiver interface {
	ArchivePage(ctx context.Context, id int64, actor string) (*domain.TransferStats, error)
}

// Router holds the API dependencies.
type Router struct {
	pages    PageArchiver
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewRouter creates a router. A nil gatherer leaves /metrics unregistered.
func NewRouter(pages PageArchiver, gatherer prometheus.Gatherer, logger *slog.Logger) *Router {
	return &Router{
		pages:    pages,
		gatherer: gatherer,
		logger:   logger.With("component", "api"),
	}
}

// Engine builds the gin engine with every route registered.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), r.requestLogger())

	engine.GET("/health", r.health)
	if r.gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := engine.Group("/api/v1")
	v1.DELETE("/pages/:id", r.deletePage)

	return engine
}

// NewServer wraps the engine in an http.Server with the default timeouts.
func (r *Router) NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}
}

func (r *Router) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (r *Router) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		r.logger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
