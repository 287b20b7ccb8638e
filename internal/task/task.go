// Package task tracks asynchronous scrape jobs: a request is submitted,
// runs in the background against a Scraper implementation, and its status
// is polled by id until it completes or fails.
package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/store"
)

const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Request describes one scrape run. Courses empty means "scrape
// everything for the period".
type Request struct {
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	Courses        []string `json:"courses,omitempty"`
	AcademicPeriod string   `json:"academic_period"`
	AcademicYear   string   `json:"academic_year"`
	Headless       bool     `json:"headless"`
}

// Status is the pollable state of one task.
type Status struct {
	TaskID      string         `json:"task_id"`
	Status      string         `json:"status"`
	Progress    int            `json:"progress"`
	Total       int            `json:"total"`
	CurrentTask string         `json:"current_task,omitempty"`
	Courses     []model.Course `json:"courses,omitempty"`
	Error       string         `json:"error,omitempty"`
	SavedFile   string         `json:"saved_file,omitempty"`
}

// Scraper is the external crawler boundary. Implementations log into the
// source system and yield raw section records; progress reports the
// courses processed so far.
type Scraper interface {
	Scrape(ctx context.Context, request Request, progress func(done int, current string)) ([]model.Course, error)
}

// Manager runs scrape tasks and keeps their statuses in memory.
type Manager struct {
	scraper  Scraper
	store    *store.Store
	logger   *zap.Logger
	onUpdate func(Status)

	mu    sync.RWMutex
	tasks map[string]*Status
}

func NewManager(scraper Scraper, store *store.Store, logger *zap.Logger) *Manager {
	return &Manager{
		scraper: scraper,
		store:   store,
		logger:  logger,
		tasks:   make(map[string]*Status),
	}
}

// OnUpdate registers a callback invoked with a snapshot after every
// status change. Used to push updates to UI clients.
func (manager *Manager) OnUpdate(callback func(Status)) {
	manager.onUpdate = callback
}

// Submit queues a scrape run and returns its task id immediately.
func (manager *Manager) Submit(ctx context.Context, request Request) string {
	taskID := uuid.New().String()

	manager.mu.Lock()
	manager.tasks[taskID] = &Status{
		TaskID:      taskID,
		Status:      StatusPending,
		Total:       len(request.Courses),
		CurrentTask: "Queued",
	}
	manager.mu.Unlock()
	manager.notify(taskID)

	manager.logger.Info("scrape task submitted",
		zap.String("taskID", taskID),
		zap.Int("courses", len(request.Courses)),
		zap.String("period", request.AcademicPeriod),
	)

	go manager.run(ctx, taskID, request)
	return taskID
}

// Get returns a snapshot of a task's status.
func (manager *Manager) Get(taskID string) (Status, bool) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	status, ok := manager.tasks[taskID]
	if !ok {
		return Status{}, false
	}
	return *status, true
}

// ActiveCount returns the number of currently running tasks.
func (manager *Manager) ActiveCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	active := 0
	for _, status := range manager.tasks {
		if status.Status == StatusRunning {
			active++
		}
	}
	return active
}

func (manager *Manager) run(ctx context.Context, taskID string, request Request) {
	manager.update(taskID, func(status *Status) {
		status.Status = StatusRunning
		status.CurrentTask = "Logging in..."
	})

	courses, err := manager.scraper.Scrape(ctx, request, func(done int, current string) {
		manager.update(taskID, func(status *Status) {
			status.Progress = done
			status.CurrentTask = current
		})
	})
	if err != nil {
		manager.logger.Error("scrape task failed", zap.String("taskID", taskID), zap.Error(err))
		manager.update(taskID, func(status *Status) {
			status.Status = StatusFailed
			status.Error = err.Error()
		})
		return
	}

	filename := store.DatasetName(request.AcademicPeriod, request.AcademicYear, len(request.Courses) > 0)
	saved, err := manager.store.Save(filename, courses)
	if err != nil {
		manager.logger.Error("cannot save scraped dataset", zap.String("taskID", taskID), zap.Error(err))
		manager.update(taskID, func(status *Status) {
			status.Status = StatusFailed
			status.Error = err.Error()
		})
		return
	}

	manager.logger.Info("scrape task completed",
		zap.String("taskID", taskID),
		zap.Int("sections", len(courses)),
		zap.String("file", saved),
	)
	manager.update(taskID, func(status *Status) {
		status.Status = StatusCompleted
		status.Progress = status.Total
		status.CurrentTask = "Done"
		status.Courses = courses
		status.SavedFile = saved
	})
}

func (manager *Manager) update(taskID string, mutate func(*Status)) {
	manager.mu.Lock()
	status, ok := manager.tasks[taskID]
	if ok {
		mutate(status)
	}
	manager.mu.Unlock()
	if ok {
		manager.notify(taskID)
	}
}

func (manager *Manager) notify(taskID string) {
	if manager.onUpdate == nil {
		return
	}
	if status, ok := manager.Get(taskID); ok {
		manager.onUpdate(status)
	}
}
