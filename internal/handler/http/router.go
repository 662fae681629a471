package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions tunes the transport middleware. A RateLimitPerSecond of zero
// or less disables rate limiting.
type RouterOptions struct {
	RateLimitPerSecond float64
}

type Router struct {
	postHandler  *PostHandler
	likeHandler  *LikeHandler
	originPolicy usecasecontract.IOriginPolicy
	readiness    contract.IReadiness
	logger       usecasecontract.IAppLogger
	opts         RouterOptions
}

func NewRouter(postUsecase usecasecontract.IPostUseCase, likeUsecase usecasecontract.ILikeUseCase, originPolicy usecasecontract.IOriginPolicy, readiness contract.IReadiness, logger usecasecontract.IAppLogger, opts RouterOptions) *Router {
	return &Router{
		postHandler:  NewPostHandler(postUsecase),
		likeHandler:  NewLikeHandler(likeUsecase),
		originPolicy: originPolicy,
		readiness:    readiness,
		logger:       logger,
		opts:         opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorTranslator(r.logger))
	router.Use(middleware.Recovery())
	router.Use(middleware.OriginAdmission(r.originPolicy))
	router.Use(middleware.CORS(r.originPolicy))

	if r.opts.RateLimitPerSecond > 0 {
		// rate limiter configuration
		lmt := tollbooth.NewLimiter(r.opts.RateLimitPerSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	// liveness, independent of the database
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend running")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(func(c *gin.Context) {
		AbortWithError(c, errs.RouteNotFound)
	})

	api := router.Group("/api")
	api.Use(middleware.Readiness(r.readiness), middleware.Identity())

	posts := api.Group("/posts")
	{
		posts.GET("", r.postHandler.GetPostsHandler)
		posts.POST("", r.postHandler.CreatePostHandler)
		posts.GET("/:id", r.postHandler.GetPostHandler)
		posts.DELETE("/:id", r.postHandler.DeletePostHandler)

		// Like routes
		posts.PATCH("/:id/like", middleware.RequireIdentity(), r.likeHandler.ToggleLikeHandler)
		posts.GET("/:id/like", middleware.RequireIdentity(), r.likeHandler.GetLikeStatusHandler)
	}
}
