package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/internal/http/handlers"
	"github.com/mahir-soa/FYP/internal/http/middleware"
)

// BuildRouter assembles the gin engine with all API routes
func BuildRouter(frontendURL string, ah *handlers.AuthHandlers, xh *handlers.ExpenseHandlers, sh *handlers.SubscriptionHandlers, fh *handlers.FareHandlers, ch *handlers.ChatHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{frontendURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.POST("/resend-verification", ah.ResendVerification)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/me", middleware.BearerToken(), ah.Me)

	expenses := api.Group("/expenses")
	expenses.GET("", xh.List)
	expenses.POST("", xh.Create)
	expenses.PUT("/:id", xh.Update)
	expenses.DELETE("/:id", xh.Delete)

	subs := api.Group("/subscriptions")
	subs.GET("", sh.List)
	subs.GET("/upcoming", sh.Upcoming)
	subs.GET("/inactive", sh.Inactive)
	subs.GET("/:id", sh.Get)
	subs.POST("", sh.Create)
	subs.PUT("/:id", sh.Update)
	subs.DELETE("/:id", sh.Delete)
	subs.PATCH("/:id/mark-used", sh.MarkUsed)
	subs.PATCH("/:id/cancel", sh.Cancel)

	api.GET("/tfl/fare", fh.Lookup)

	api.POST("/chat", ch.Chat)
	conversations := api.Group("/conversations")
	conversations.GET("", ch.ListConversations)
	conversations.GET("/:id", ch.GetConversation)
	conversations.GET("/:id/messages", ch.GetMessages)
	conversations.POST("", ch.CreateConversation)
	conversations.POST("/:id/messages", ch.AddMessage)
	conversations.PUT("/:id", ch.UpdateConversation)
	conversations.DELETE("/:id", ch.DeleteConversation)

	return r
}
