package api

import (
	"context"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/api/descriptor"
	"github.com/LambdaTest/ghnotify/pkg/api/health"
	"github.com/LambdaTest/ghnotify/pkg/api/middleware"
	"github.com/LambdaTest/ghnotify/pkg/api/notify"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Router represents the routes for the http server.
type Router struct {
	cfg       *config.Config
	signalCtx context.Context
	notifier  core.StatusNotifier
	session   core.Session
	redisDB   core.RedisDB
	logger    lumber.Logger
}

// New returns a New Router. session may be nil, in which case the routes are unauthenticated.
func New(
	signalCtx context.Context,
	cfg *config.Config,
	notifier core.StatusNotifier,
	session core.Session,
	redisDB core.RedisDB,
	logger lumber.Logger) Router {
	return Router{
		cfg:       cfg,
		signalCtx: signalCtx,
		notifier:  notifier,
		session:   session,
		redisDB:   redisDB,
		logger:    logger,
	}
}

// Handler function will perform all route operations
func (r *Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := configureValidator(v); err != nil {
			r.logger.Fatalf("failed to configure validator %v", err)
		}
	}
	// skip /health API from logs as will be required in probes
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/health"))
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = constants.CorsAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization", "cache-control", "pragma")
	router.Use(cors.New(corsConfig))
	router.Use(otelgin.Middleware(constants.ServiceName))
	pprof.Register(router)

	router.GET("/health", health.Handler(r.signalCtx))

	notifyRoutes := router.Group("/notify")
	descriptorRoutes := router.Group("/descriptor")
	if r.session != nil {
		notifyRoutes.Use(middleware.HandleJWTVerification(r.session, r.redisDB, r.logger))
		descriptorRoutes.Use(middleware.HandleJWTVerification(r.session, r.redisDB, r.logger))
	}

	notifyRoutes.POST("", notify.Handle(r.notifier, r.logger))

	descriptorRoutes.GET("/test-connection", descriptor.HandleTestConnection(r.notifier))
	descriptorRoutes.GET("/check-repo", descriptor.HandleCheckRepo(r.notifier))
	descriptorRoutes.GET("/check-sha", descriptor.HandleCheckSHA(r.notifier))
	descriptorRoutes.GET("/status-items", descriptor.HandleStatusItems(r.notifier))
	descriptorRoutes.GET("/credentials-items", descriptor.HandleCredentialsItems(r.notifier, r.logger))

	return router
}
