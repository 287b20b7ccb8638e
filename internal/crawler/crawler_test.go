package crawler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ismis-scheduler/internal/task"
)

func noProgress(int, string) {}

func TestExecScraper(t *testing.T) {
	t.Run("DecodesCrawlerOutput", func(t *testing.T) {
		// Arrange: stand in for the crawler with a shell that swallows
		// the request and emits one section record.
		scraper := NewExecScraper("sh", []string{"-c",
			`cat > /dev/null; echo '[{"code": "CIS 2103 - Group 1", "schedule": "TBA", "enrolled": "1/40"}]'`,
		}, zap.NewNop())

		// Act
		courses, err := scraper.Scrape(context.Background(), task.Request{AcademicPeriod: "SUMMER"}, noProgress)

		// Assert
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "CIS 2103 - Group 1", courses[0].Code)
	})

	t.Run("ProcessFailure", func(t *testing.T) {
		scraper := NewExecScraper("sh", []string{"-c", "echo 'login rejected' >&2; exit 1"}, zap.NewNop())

		_, err := scraper.Scrape(context.Background(), task.Request{}, noProgress)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "login rejected")
	})

	t.Run("MalformedOutput", func(t *testing.T) {
		scraper := NewExecScraper("sh", []string{"-c", "cat > /dev/null; echo 'not json'"}, zap.NewNop())

		_, err := scraper.Scrape(context.Background(), task.Request{}, noProgress)

		assert.Error(t, err)
	})
}

func TestUnconfigured(t *testing.T) {
	_, err := Unconfigured{}.Scrape(context.Background(), task.Request{}, noProgress)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
