package http

import (
	"time"

	"github.com/MKhiriev/go-web-server/internal/config"
	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/metrics"
	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/internal/utils"
)

// requestIDGenerator produces the ids assigned by the request stamper.
type requestIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	cookiePolicy  cookies.Policy
	refreshWindow time.Duration
	staticDir     string
	version       string

	metrics       *metrics.Metrics
	exposeMetrics bool

	idGenerator requestIDGenerator
	rpcMethods  map[string]rpcMethod

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cookiePolicy: cookies.Policy{
			Name:     cfg.Cookie.Name,
			Path:     cfg.Cookie.Path,
			Domain:   cfg.Cookie.Domain,
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.Cookie.SameSite,
		},
		refreshWindow: cfg.Cookie.RefreshWindow,
		staticDir:     cfg.Server.StaticDir,
		version:       cfg.App.Version,
		metrics:       metrics.New(),
		exposeMetrics: cfg.Server.EnableMetrics,
		idGenerator:   utils.NewUUIDGenerator(),
		logger:        logger,
	}
	h.rpcMethods = h.taskMethods()

	logger.Info().Msg("http handler created")
	return h
}
