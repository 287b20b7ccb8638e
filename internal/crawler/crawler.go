// Package crawler bridges to the external browser-automation crawler.
// The crawler itself (login flow, polite-delay throttling, DOM scraping)
// lives outside this service; this package only runs a configured crawler
// command and decodes the section records it emits.
package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/task"
)

// ErrNotConfigured is returned when no crawler command is set.
var ErrNotConfigured = errors.New("no crawler command configured")

// ExecScraper runs an external crawler process per scrape request. The
// request is fed to the process as JSON on stdin; the process writes the
// scraped course records as a JSON array on stdout.
type ExecScraper struct {
	command string
	args    []string
	logger  *zap.Logger
}

func NewExecScraper(command string, args []string, logger *zap.Logger) *ExecScraper {
	return &ExecScraper{command: command, args: args, logger: logger}
}

func (scraper *ExecScraper) Scrape(ctx context.Context, request task.Request, progress func(int, string)) ([]model.Course, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("cannot encode crawler request: %w", err)
	}

	progress(0, "Running crawler...")
	scraper.logger.Info("starting crawler process",
		zap.String("command", scraper.command),
		zap.String("period", request.AcademicPeriod),
	)

	cmd := exec.CommandContext(ctx, scraper.command, scraper.args...)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("crawler execution failed: %v : %v", err, stderr.String())
	}

	var courses []model.Course
	if err := json.Unmarshal(stdout.Bytes(), &courses); err != nil {
		return nil, fmt.Errorf("cannot decode crawler output: %w", err)
	}
	return courses, nil
}

// Unconfigured is the Scraper used when no crawler command is set: every
// scrape request fails immediately with a clear error while the rest of
// the service keeps working against stored datasets.
type Unconfigured struct{}

func (Unconfigured) Scrape(context.Context, task.Request, func(int, string)) ([]model.Course, error) {
	return nil, ErrNotConfigured
}
