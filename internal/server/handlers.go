package server

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/store"
	"ismis-scheduler/internal/task"
)

const (
	defaultMaxCombinations = 5000
	maxMaxCombinations     = 10000
)

type GenerateRequest struct {
	CourseCodes     []string `json:"course_codes"`
	MaxCombinations int      `json:"max_combinations"`
	JSONFilename    string   `json:"json_filename"`
}

type GenerateResponse struct {
	Combinations []model.ScheduleCombination `json:"combinations"`
	// GenerationTime is the engine's wall-clock duration in seconds,
	// rounded to milliseconds.
	GenerationTime float64 `json:"generation_time"`
	Count          int     `json:"count"`
}

type CoursesResponse struct {
	Courses     []model.Course `json:"courses"`
	Count       int            `json:"count"`
	UniqueCodes int            `json:"unique_codes"`
	LastUpdated string         `json:"last_updated,omitempty"`
}

type ScrapeResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func detail(message string) gin.H {
	return gin.H{"detail": message}
}

func (server *Server) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now().Format(time.RFC3339),
		"active_tasks": server.tasks.ActiveCount(),
	})
}

func (server *Server) handleGenerate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, detail("invalid request body: "+err.Error()))
		return
	}
	if len(request.CourseCodes) == 0 {
		ctx.JSON(http.StatusBadRequest, detail("course_codes must not be empty"))
		return
	}
	if request.MaxCombinations <= 0 {
		request.MaxCombinations = defaultMaxCombinations
	}
	if request.MaxCombinations > maxMaxCombinations {
		request.MaxCombinations = maxMaxCombinations
	}

	courses, _, err := server.datasets.Load(request.JSONFilename)
	if err != nil {
		server.respondDatasetError(ctx, err)
		return
	}

	result, err := server.generator.Generate(courses, request.CourseCodes, request.MaxCombinations)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, detail(validationErr.Error()))
			return
		}
		server.logger.Error("schedule generation failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, detail(err.Error()))
		return
	}

	server.logger.Info("generated schedule combinations",
		zap.Strings("courses", request.CourseCodes),
		zap.Int("count", len(result.Combinations)),
		zap.Bool("truncated", result.Truncated),
		zap.Duration("elapsed", result.Elapsed),
	)

	ctx.JSON(http.StatusOK, GenerateResponse{
		Combinations:   result.Combinations,
		GenerationTime: math.Round(result.Elapsed.Seconds()*1000) / 1000,
		Count:          len(result.Combinations),
	})
}

func (server *Server) handleGetCourses(ctx *gin.Context) {
	server.respondCourses(ctx, ctx.Query("filename"))
}

func (server *Server) handleGetCachedCourses(ctx *gin.Context) {
	server.respondCourses(ctx, "")
}

func (server *Server) respondCourses(ctx *gin.Context, filename string) {
	courses, modified, err := server.datasets.Load(filename)
	if errors.Is(err, store.ErrNoDataset) {
		// An empty dataset is a state the UI handles, not a failure.
		ctx.JSON(http.StatusOK, CoursesResponse{Courses: []model.Course{}})
		return
	}
	if err != nil {
		server.respondDatasetError(ctx, err)
		return
	}

	response := CoursesResponse{
		Courses:     courses,
		Count:       len(courses),
		UniqueCodes: store.UniqueCodes(courses),
	}
	if !modified.IsZero() {
		response.LastUpdated = modified.Format(time.RFC3339)
	}
	ctx.JSON(http.StatusOK, response)
}

func (server *Server) handleListFiles(ctx *gin.Context) {
	files, err := server.datasets.List()
	if err != nil {
		server.logger.Error("cannot list datasets", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, detail(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"files": files,
		"count": len(files),
	})
}

func (server *Server) handleLoadFile(ctx *gin.Context) {
	filename := ctx.Param("filename")
	courses, modified, err := server.datasets.Load(filename)
	if err != nil {
		server.respondDatasetError(ctx, err)
		return
	}

	response := CoursesResponse{
		Courses:     courses,
		Count:       len(courses),
		UniqueCodes: store.UniqueCodes(courses),
	}
	if !modified.IsZero() {
		response.LastUpdated = modified.Format(time.RFC3339)
	}
	ctx.JSON(http.StatusOK, response)
}

func (server *Server) handleScrapeSpecific(ctx *gin.Context) {
	var request task.Request
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, detail("invalid request body: "+err.Error()))
		return
	}
	if len(request.Courses) == 0 {
		ctx.JSON(http.StatusBadRequest, detail("courses must not be empty"))
		return
	}
	server.submitScrape(ctx, request)
}

func (server *Server) handleScrapeAll(ctx *gin.Context) {
	var request task.Request
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, detail("invalid request body: "+err.Error()))
		return
	}
	request.Courses = nil
	server.submitScrape(ctx, request)
}

func (server *Server) submitScrape(ctx *gin.Context, request task.Request) {
	if request.AcademicPeriod == "" || request.AcademicYear == "" {
		ctx.JSON(http.StatusBadRequest, detail("academic_period and academic_year are required"))
		return
	}

	// The task outlives the submitting request, so it must not inherit
	// the request context.
	taskID := server.tasks.Submit(context.Background(), request)
	ctx.JSON(http.StatusOK, ScrapeResponse{
		TaskID:  taskID,
		Message: "Scraping task started",
		Status:  task.StatusPending,
	})
}

func (server *Server) handleScrapeStatus(ctx *gin.Context) {
	status, ok := server.tasks.Get(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, detail("Task not found"))
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (server *Server) respondDatasetError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoDataset):
		ctx.JSON(http.StatusNotFound, detail("No courses data found"))
	case errors.Is(err, store.ErrBadFilename):
		ctx.JSON(http.StatusBadRequest, detail("Invalid filename"))
	default:
		server.logger.Error("dataset access failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, detail(err.Error()))
	}
}
