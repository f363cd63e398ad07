package model

// MonthlyBucket is the number of records created in one calendar month.
// Month is formatted "YYYY-MM" in UTC.
type MonthlyBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Stats is the aggregate view over the whole dataset.
type Stats struct {
	TotalRecords  int             `json:"total_records"`
	MonthlyStats  []MonthlyBucket `json:"monthly_stats"`
	RecentRecords int             `json:"recent_records"`
	QueryTimeMs   int64           `json:"query_time_ms"`
}

// BenchmarkResult is the timing of one query shape.
type BenchmarkResult struct {
	Name        string `json:"name"`
	QueryTimeMs int64  `json:"query_time_ms"`
	ResultCount int    `json:"result_count"`
}

// BenchmarkReport is the outcome of a full benchmark run.
type BenchmarkReport struct {
	IndividualQueries []BenchmarkResult `json:"individual_queries"`
	TotalTimeMs       int64             `json:"total_time_ms"`
	AverageTimeMs     float64           `json:"average_time_ms"`
	ArchiveURL        string            `json:"archive_url,omitempty"`
}
