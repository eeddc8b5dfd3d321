package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/matching"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/maxaizer/careerboost/internal/services"
	"net/http"
	"time"
)

type Services struct {
	Accounts        *services.Accounts
	Applications    *services.Applications
	Notifications   *services.Notifications
	Jobs            *services.Jobs
	Profiles        *services.Profiles
	CompanyProfiles *services.CompanyProfiles
	Skills          *services.SkillCatalog
	Bio             *services.BioService
	Matching        *matching.Engine
}

type handlers struct {
	Services
}

func NewRouter(cfg config.HTTPConfig, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(recovery(), requestLogger(), limitBody(cfg.MaxBodyBytes))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := &handlers{Services: svc}
	protected := authRequired(svc.Accounts)

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.NoRoute(h.notFound)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.GET("/me", protected, h.me)

	applications := api.Group("/applications", protected)
	applications.POST("", h.apply)
	applications.GET("/my", h.listMyApplications)
	applications.GET("/job/:jobId", h.listJobApplications)
	applications.PATCH("/:id/status", h.updateApplicationStatus)
	applications.DELETE("/:id", h.withdrawApplication)

	ai := api.Group("/ai", protected)
	ai.POST("/match", h.match)
	ai.POST("/generate-bio", h.generateBio)

	notifications := api.Group("/notifications", protected)
	notifications.GET("", h.listNotifications)
	notifications.GET("/unread-count", h.unreadCount)
	notifications.PATCH("/read-all", h.markAllRead)
	notifications.PATCH("/:id/read", h.markRead)

	jobs := api.Group("/jobs")
	jobs.GET("", h.listJobs)
	jobs.GET("/:id", h.getJob)
	jobs.POST("", protected, h.createJob)
	jobs.PUT("/:id", protected, h.updateJob)
	jobs.DELETE("/:id", protected, h.deleteJob)

	profiles := api.Group("/profiles", protected)
	profiles.POST("", h.createProfile)
	profiles.GET("/me", h.getMyProfile)
	profiles.PUT("/me", h.updateMyProfile)
	profiles.DELETE("/me", h.deleteMyProfile)
	profiles.GET("/user/:userId", h.getProfileByUser)

	companies := api.Group("/company-profiles")
	companies.POST("", protected, h.createCompanyProfile)
	companies.GET("/me", protected, h.getMyCompanyProfile)
	companies.PUT("/me", protected, h.updateMyCompanyProfile)
	companies.GET("/user/:userId", h.getCompanyProfileByUser)

	skills := api.Group("/skills")
	skills.GET("", h.listSkills)
	skills.GET("/:id", h.getSkill)
	skills.POST("", protected, h.createSkill)
	skills.PUT("/:id", protected, h.updateSkill)
	skills.DELETE("/:id", protected, h.deleteSkill)

	return router
}

func NewServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody{Error: "NotFound", Message: "route " + c.Request.URL.Path + " not found"})
}
