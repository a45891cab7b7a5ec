package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mintfire.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	teamHandler        *handlers.TeamMemberHandler
	founderHandler     *handlers.FounderHandler
	blogHandler        *handlers.BlogHandler
	bugReportHandler   *handlers.BugReportHandler
	applicantHandler   *handlers.ApplicantHandler
	feedbackHandler    *handlers.FeedbackHandler
	siteContentHandler *handlers.SiteContentHandler
	hallOfFameHandler  *handlers.HallOfFameHandler
	waitlistHandler    *handlers.WaitlistHandler
	chatHandler        *handlers.ChatHandler
	dashboardHandler   *handlers.DashboardHandler
	adminAuth          gin.HandlerFunc
	requireSessionPage gin.HandlerFunc
	redirectIfAuthed   gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "mintfire-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerAdminPages guards the dashboard page boundary: a valid
// session on the login page redirects to the dashboard and vice versa.
func registerAdminPages(r *gin.Engine, d routeDeps) {
	r.GET("/admin/login", d.redirectIfAuthed, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "login"})
	})

	dashboard := r.Group("/admin/dashboard")
	dashboard.Use(d.requireSessionPage)
	{
		dashboard.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": "dashboard"})
		})
	}
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Public read surface
		v1.GET("/team", d.teamHandler.List)
		v1.GET("/founders", d.founderHandler.List)
		v1.GET("/blog", d.blogHandler.ListPublished)
		v1.GET("/blog/:slug", d.blogHandler.GetBySlug)
		v1.GET("/site-content", d.siteContentHandler.ListActive)
		v1.GET("/hall-of-fame", d.hallOfFameHandler.ListRanked)

		// Public submissions
		v1.POST("/bug-reports", d.bugReportHandler.Submit)
		v1.POST("/applicants", d.applicantHandler.Apply)
		v1.POST("/feedback", d.feedbackHandler.Submit)
		v1.POST("/waitlist", d.waitlistHandler.Join)
		v1.POST("/chat", d.chatHandler.Ask)

		// Auth boundary: login and lockout recovery have no session yet
		v1.POST("/admin/auth/login", d.authHandler.Login)
		v1.POST("/admin/auth/super-action", d.authHandler.SuperAction)

		admin := v1.Group("/admin")
		admin.Use(d.adminAuth)
		{
			admin.POST("/auth/logout", d.authHandler.Logout)
			admin.GET("/auth/me", d.authHandler.Me)
			admin.POST("/auth/admins", d.authHandler.CreateAdmin)
			admin.POST("/auth/super-action/codes", d.authHandler.ProvisionSuperActionCode)
			admin.GET("/auth/audit", d.authHandler.AuditLog)

			admin.GET("/dashboard/stats", d.dashboardHandler.Stats)

			admin.GET("/team/:id", d.teamHandler.Get)
			admin.POST("/team", d.teamHandler.Create)
			admin.PATCH("/team/:id", d.teamHandler.Update)
			admin.DELETE("/team/:id", d.teamHandler.Delete)

			admin.GET("/founders/:id", d.founderHandler.Get)
			admin.POST("/founders", d.founderHandler.Create)
			admin.PATCH("/founders/:id", d.founderHandler.Update)
			admin.DELETE("/founders/:id", d.founderHandler.Delete)

			admin.GET("/blog", d.blogHandler.ListAdmin)
			admin.GET("/blog/:id", d.blogHandler.Get)
			admin.POST("/blog", d.blogHandler.Create)
			admin.PATCH("/blog/:id", d.blogHandler.Update)
			admin.DELETE("/blog/:id", d.blogHandler.Delete)

			admin.GET("/bug-reports", d.bugReportHandler.List)
			admin.GET("/bug-reports/:id", d.bugReportHandler.Get)
			admin.PATCH("/bug-reports/:id", d.bugReportHandler.Update)
			admin.PATCH("/bug-reports/:id/status", d.bugReportHandler.UpdateStatus)
			admin.DELETE("/bug-reports/:id", d.bugReportHandler.Delete)

			admin.GET("/applicants", d.applicantHandler.List)
			admin.GET("/applicants/:id", d.applicantHandler.Get)
			admin.PATCH("/applicants/:id", d.applicantHandler.Update)
			admin.PATCH("/applicants/:id/status", d.applicantHandler.UpdateStatus)
			admin.DELETE("/applicants/:id", d.applicantHandler.Delete)

			admin.GET("/feedback", d.feedbackHandler.List)
			admin.GET("/feedback/:id", d.feedbackHandler.Get)
			admin.DELETE("/feedback/:id", d.feedbackHandler.Delete)

			admin.GET("/site-content", d.siteContentHandler.List)
			admin.GET("/site-content/:id", d.siteContentHandler.Get)
			admin.POST("/site-content", d.siteContentHandler.Create)
			admin.PATCH("/site-content/:id", d.siteContentHandler.Update)
			admin.DELETE("/site-content/:id", d.siteContentHandler.Delete)

			admin.GET("/hall-of-fame/:id", d.hallOfFameHandler.Get)
			admin.POST("/hall-of-fame", d.hallOfFameHandler.Create)
			admin.POST("/hall-of-fame/award", d.hallOfFameHandler.Award)
			admin.PATCH("/hall-of-fame/:id", d.hallOfFameHandler.Update)
			admin.DELETE("/hall-of-fame/:id", d.hallOfFameHandler.Delete)

			admin.GET("/waitlist", d.waitlistHandler.List)
			admin.GET("/waitlist/:id", d.waitlistHandler.Get)
			admin.DELETE("/waitlist/:id", d.waitlistHandler.Delete)
		}
	}
}
