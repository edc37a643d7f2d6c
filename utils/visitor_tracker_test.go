package utils

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taalimflow/models"
)

func newTestTracker(t *testing.T) *VisitorTracker {
	t.Helper()
	return NewVisitorTracker(filepath.Join(t.TempDir(), "visitor-data.json"), log.New(io.Discard, "", 0))
}

func TestVisitorDedupWithinWindow(t *testing.T) {
	vt := newTestTracker(t)

	assert.True(t, vt.Record("41.100.1.1", "test-agent"))
	assert.False(t, vt.Record("41.100.1.1", "test-agent"))

	stats := vt.Stats()
	assert.Equal(t, 2, stats.TotalVisits)
	assert.Equal(t, 1, stats.UniqueVisitors)
	assert.Equal(t, 1, stats.TodayVisits)
}

func TestVisitorDistinctIPs(t *testing.T) {
	vt := newTestTracker(t)

	vt.Record("41.100.1.1", "")
	vt.Record("41.100.1.2", "")

	stats := vt.Stats()
	assert.Equal(t, 2, stats.TotalVisits)
	assert.Equal(t, 2, stats.UniqueVisitors)
	assert.Equal(t, 2, stats.TodayVisits)
}

func TestVisitorRetentionPurge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor-data.json")
	now := time.Now().UTC()

	seed := visitorFile{
		UniqueVisitors: []string{"41.100.9.9"},
		TotalVisits:    1,
		DailyVisits:    map[string]int{},
		Visitors: []models.VisitorRecord{
			{IP: "41.100.9.9", VisitedAt: now.AddDate(0, 0, -40)},
		},
		LastUpdated: now,
	}
	raw, err := json.Marshal(seed)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0644))

	vt := NewVisitorTracker(path, log.New(io.Discard, "", 0))
	assert.Equal(t, 1, vt.RecordCount())

	// Any write purges records older than 30 days.
	vt.Record("41.100.1.1", "")
	assert.Equal(t, 1, vt.RecordCount())

	stats := vt.Stats()
	assert.Equal(t, 2, stats.TotalVisits)
}

func TestVisitorStaleRecordCountsAsUniqueAgain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor-data.json")
	now := time.Now().UTC()

	// Same IP last seen two days ago: outside the dedup window, inside retention.
	seed := visitorFile{
		UniqueVisitors: []string{"41.100.1.1"},
		TotalVisits:    1,
		DailyVisits:    map[string]int{now.AddDate(0, 0, -2).Format("2006-01-02"): 1},
		Visitors: []models.VisitorRecord{
			{IP: "41.100.1.1", VisitedAt: now.AddDate(0, 0, -2)},
		},
		LastUpdated: now,
	}
	raw, err := json.Marshal(seed)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0644))

	vt := NewVisitorTracker(path, log.New(io.Discard, "", 0))
	assert.True(t, vt.Record("41.100.1.1", ""))
	assert.Equal(t, 2, vt.RecordCount())

	stats := vt.Stats()
	assert.Equal(t, 1, stats.UniqueVisitors)
	assert.Equal(t, 1, stats.TodayVisits)
}

func TestVisitorStatsWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitor-data.json")
	now := time.Now().UTC()

	seed := visitorFile{
		UniqueVisitors: []string{"a", "b", "c"},
		TotalVisits:    15,
		DailyVisits: map[string]int{
			now.AddDate(0, 0, -2).Format("2006-01-02"):  3,
			now.AddDate(0, 0, -10).Format("2006-01-02"): 5,
			now.AddDate(0, 0, -40).Format("2006-01-02"): 7,
		},
		LastUpdated: now,
	}
	raw, err := json.Marshal(seed)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0644))

	vt := NewVisitorTracker(path, log.New(io.Discard, "", 0))
	stats := vt.Stats()
	assert.Equal(t, 15, stats.TotalVisits)
	assert.Equal(t, 3, stats.UniqueVisitors)
	assert.Equal(t, 0, stats.TodayVisits)
	assert.Equal(t, 3, stats.WeeklyVisits)
	assert.Equal(t, 8, stats.MonthlyVisits)
}
