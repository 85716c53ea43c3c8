package infrastructure

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nexora.io/infrastructure/logger"
	"nexora.io/infrastructure/ratelimit"
	routev1 "nexora.io/infrastructure/routes/ginRouter/web/v1"
)

func startGinServer() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.Default()

	server.MaxMultipartMemory = 32 << 20

	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))
	server.Use(ratelimit.TokenBucketPerIP())

	v1 := server.Group("/api/v1")
	{
		routev1.ScanRouter(v1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	server.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "this route does not exist"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting up", logger.LoggerOptions{
		Key:  "port",
		Data: port,
	})
	if err := server.Run(fmt.Sprintf(":%s", port)); err != nil {
		logger.Error("server failed to start", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
