package router

import (
	"time"

	"hmps-api/internal/handler"
	"hmps-api/internal/middleware"
	"hmps-api/internal/service"
	"hmps-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	AllowedOrigin  string
	RequestTimeout time.Duration
	Port           int
}

// Setup builds the engine with every route group bound to st.
func Setup(st *store.Store, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.CORS(opts.AllowedOrigin),
		middleware.Timeout(opts.RequestTimeout),
	)

	systemH := handler.NewSystemHandler(st, opts.Port)
	authH := handler.NewAuthHandler(service.NewAuthService(st))
	galleryH := handler.NewGalleryHandler(service.NewGalleryService(st))
	activityH := handler.NewActivityHandler(service.NewActivityService(st))
	aboutH := handler.NewAboutHandler(service.NewAboutService(st))
	memberH := handler.NewMemberHandler(service.NewMemberService(st))

	r.GET("/", systemH.Banner)
	r.GET("/healthz", systemH.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/login", authH.Login)

	gallery := r.Group("/gallery")
	gallery.GET("", galleryH.List)
	gallery.GET("/:id", galleryH.Get)
	gallery.POST("", galleryH.Create)
	gallery.PUT("/:id", galleryH.Update)
	gallery.DELETE("/:id", galleryH.Delete)

	activities := r.Group("/activities")
	activities.GET("", activityH.List)
	activities.GET("/:id", activityH.Get)
	activities.POST("", activityH.Create)
	activities.PUT("/:id", activityH.Update)
	activities.DELETE("/:id", activityH.Delete)

	r.GET("/sejarah", aboutH.GetSejarah)
	r.PUT("/sejarah", aboutH.PutSejarah)
	r.GET("/budaya", aboutH.GetBudaya)
	r.PUT("/budaya", aboutH.PutBudaya)
	r.GET("/visi-misi", aboutH.GetVisiMisi)
	r.PUT("/visi-misi", aboutH.PutVisiMisi)

	anggota := r.Group("/api/anggota")
	anggota.GET("", memberH.List)
	anggota.GET("/:id", memberH.Get)
	anggota.POST("", memberH.Create)
	anggota.PUT("/:id", memberH.Update)
	anggota.DELETE("/:id", memberH.Delete)

	return r
}
