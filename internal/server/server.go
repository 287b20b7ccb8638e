// Package server exposes the scheduling engine and the scrape task
// registry over HTTP for the frontend.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/store"
	"ismis-scheduler/internal/task"
	"ismis-scheduler/internal/websocket"
)

type Server struct {
	datasets  *store.Store
	generator model.Generator
	tasks     *task.Manager
	hub       *websocket.Hub
	logger    *zap.Logger
}

func New(datasets *store.Store, generator model.Generator, tasks *task.Manager, hub *websocket.Hub, logger *zap.Logger) *Server {
	return &Server{
		datasets:  datasets,
		generator: generator,
		tasks:     tasks,
		hub:       hub,
		logger:    logger,
	}
}

// Router builds the gin engine with all routes attached.
func (server *Server) Router(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(allowedOrigins))

	router.GET("/health", server.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/courses", server.handleGetCourses)
		api.GET("/courses/cached", server.handleGetCachedCourses)

		api.POST("/schedules/generate", server.handleGenerate)
		api.GET("/schedules/available", server.handleListFiles)
		api.GET("/schedules/load/:filename", server.handleLoadFile)

		api.POST("/scrape/specific", server.handleScrapeSpecific)
		api.POST("/scrape/all", server.handleScrapeAll)
		api.GET("/scrape/status/:id", server.handleScrapeStatus)
	}

	if server.hub != nil {
		router.GET("/ws", func(ctx *gin.Context) {
			websocket.ServeWs(server.hub, ctx.Writer, ctx.Request)
		})
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if origin != "" && lo.Contains(allowedOrigins, origin) {
			ctx.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
