package domain

import "time"

type BoardStat struct {
	Board       string    `json:"board"`
	TotalJobs   int       `json:"total_jobs"`
	LastJobTime time.Time `json:"last_job_time"`
}

type DashboardStatus struct {
	TotalJobs         int         `json:"total_jobs"`
	JobsToday         int         `json:"jobs_today"`
	TotalApplications int         `json:"total_applications"`
	Boards            []BoardStat `json:"boards"`
	DatabaseHealthy   bool        `json:"database_healthy"`
	RedisHealthy      bool        `json:"redis_healthy"`
	ServerTime        time.Time   `json:"server_time"`
}
