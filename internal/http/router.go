package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buyer-quiz/internal/service"
)

// NewRouter configures the Gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	allowedOrigins []string,
	quizH *QuizHandler,
	chatH *ChatHandler,
	calcH *CalculatorHandler,
	adminH *AdminHandler,
	adminAuth *service.AdminAuthService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(allowedOrigins), jsonContentTypeMiddleware())

	// Widget surface, embedded cross-origin in marketing pages.
	quiz := r.Group("/quiz")
	quiz.GET("/items", quizH.ListItems)
	quiz.POST("/submissions", quizH.Submit)
	quiz.POST("/preview", quizH.Preview)

	r.POST("/chat/messages", chatH.PostMessage)

	calculators := r.Group("/calculators")
	calculators.POST("/mortgage", calcH.Mortgage)
	calculators.POST("/affordability", calcH.Affordability)

	admin := r.Group("/admin")
	admin.POST("/login", adminH.Login)
	protected := admin.Group("", JWTAuthMiddleware(adminAuth))
	protected.GET("/leads", adminH.ListLeads)
	protected.GET("/leads/:id", adminH.GetLead)

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}

// zapLoggerMiddleware logs each request with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
