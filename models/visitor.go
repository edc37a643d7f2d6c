package models

import "time"

// VisitorRecord is one deduplicated site visit. A given IP produces at
// most one record per trailing 24-hour window.
type VisitorRecord struct {
	IP        string    `json:"ip"`
	VisitedAt time.Time `json:"visitedAt"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// VisitorStats is the aggregate view served to the admin dashboard.
type VisitorStats struct {
	UniqueVisitors int       `json:"uniqueVisitors"`
	TotalVisits    int       `json:"totalVisits"`
	TodayVisits    int       `json:"todayVisits"`
	WeeklyVisits   int       `json:"weeklyVisits"`
	MonthlyVisits  int       `json:"monthlyVisits"`
	LastUpdated    time.Time `json:"lastUpdated"`
}
