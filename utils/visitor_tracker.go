package utils

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"taalimflow/models"
)

const (
	visitorDedupWindow = 24 * time.Hour
	visitorRetention   = 30 * 24 * time.Hour
)

// visitorFile is the persisted layout of visitor-data.json.
type visitorFile struct {
	UniqueVisitors []string               `json:"uniqueVisitors"`
	TotalVisits    int                    `json:"totalVisits"`
	DailyVisits    map[string]int         `json:"dailyVisits"`
	Visitors       []models.VisitorRecord `json:"visitors"`
	LastUpdated    time.Time              `json:"lastUpdated"`
}

// VisitorTracker approximates unique and total visit counts. Total visits
// count every hit; the unique set and the per-day counters only advance
// when the IP has not been seen within the trailing 24 hours. Persistence
// is asynchronous and best-effort.
type VisitorTracker struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger

	unique      map[string]struct{}
	totalVisits int
	dailyVisits map[string]int
	records     []models.VisitorRecord
	lastUpdated time.Time
}

func NewVisitorTracker(path string, logger *log.Logger) *VisitorTracker {
	vt := &VisitorTracker{
		path:        path,
		logger:      logger,
		unique:      make(map[string]struct{}),
		dailyVisits: make(map[string]int),
		lastUpdated: time.Now().UTC(),
	}
	vt.load()
	return vt
}

func (vt *VisitorTracker) load() {
	raw, err := os.ReadFile(vt.path)
	if err != nil {
		vt.logger.Println("Visitor data file not found, starting with fresh data")
		return
	}
	var data visitorFile
	if err := json.Unmarshal(raw, &data); err != nil {
		vt.logger.Printf("Visitor data file unreadable, starting with fresh data: %v", err)
		return
	}

	for _, ip := range data.UniqueVisitors {
		vt.unique[ip] = struct{}{}
	}
	vt.totalVisits = data.TotalVisits
	if data.DailyVisits != nil {
		vt.dailyVisits = data.DailyVisits
	}
	vt.records = data.Visitors
	if !data.LastUpdated.IsZero() {
		vt.lastUpdated = data.LastUpdated
	}
}

func (vt *VisitorTracker) snapshot() visitorFile {
	unique := make([]string, 0, len(vt.unique))
	for ip := range vt.unique {
		unique = append(unique, ip)
	}
	daily := make(map[string]int, len(vt.dailyVisits))
	for day, visits := range vt.dailyVisits {
		daily[day] = visits
	}
	records := make([]models.VisitorRecord, len(vt.records))
	copy(records, vt.records)

	return visitorFile{
		UniqueVisitors: unique,
		TotalVisits:    vt.totalVisits,
		DailyVisits:    daily,
		Visitors:       records,
		LastUpdated:    vt.lastUpdated,
	}
}

func (vt *VisitorTracker) save(data visitorFile) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		vt.logger.Printf("Failed to encode visitor data: %v", err)
		return
	}
	if err := os.WriteFile(vt.path, raw, 0644); err != nil {
		vt.logger.Printf("Failed to save visitor data: %v", err)
	}
}

// Record counts one visit. Returns true when the visit was counted as
// unique within the dedup window.
func (vt *VisitorTracker) Record(ip, userAgent string) bool {
	vt.mu.Lock()

	now := time.Now().UTC()
	vt.totalVisits++

	// Retention: drop records older than 30 days on every write.
	kept := vt.records[:0]
	for _, record := range vt.records {
		if now.Sub(record.VisitedAt) <= visitorRetention {
			kept = append(kept, record)
		}
	}
	vt.records = kept

	seen := false
	for _, record := range vt.records {
		if record.IP == ip && now.Sub(record.VisitedAt) < visitorDedupWindow {
			seen = true
			break
		}
	}

	if !seen {
		vt.records = append(vt.records, models.VisitorRecord{
			IP:        ip,
			VisitedAt: now,
			UserAgent: userAgent,
		})
		vt.unique[ip] = struct{}{}
		vt.dailyVisits[now.Format("2006-01-02")]++
	}
	vt.lastUpdated = now

	data := vt.snapshot()
	vt.mu.Unlock()

	// Persist off the request path; a failed write is logged, not retried.
	go vt.save(data)

	return !seen
}

// Stats aggregates the daily counters over the trailing windows.
func (vt *VisitorTracker) Stats() models.VisitorStats {
	vt.mu.Lock()
	defer vt.mu.Unlock()

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	stats := models.VisitorStats{
		UniqueVisitors: len(vt.unique),
		TotalVisits:    vt.totalVisits,
		TodayVisits:    vt.dailyVisits[today],
		LastUpdated:    vt.lastUpdated,
	}

	for day, visits := range vt.dailyVisits {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		if !date.Before(weekAgo.Truncate(24 * time.Hour)) {
			stats.WeeklyVisits += visits
		}
		if !date.Before(monthAgo.Truncate(24 * time.Hour)) {
			stats.MonthlyVisits += visits
		}
	}
	return stats
}

// RecordCount reports how many deduplicated records are currently held.
func (vt *VisitorTracker) RecordCount() int {
	vt.mu.Lock()
	defer vt.mu.Unlock()
	return len(vt.records)
}
