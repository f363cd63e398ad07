package model

import "time"

// Record is a single time-stamped row of the dataset.
// It carries no persistence tags; gateways scan into it explicitly.
type Record struct {
	ID        int64     `json:"id"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordDetail is a single record annotated with the lookup time.
type RecordDetail struct {
	Record
	QueryTimeMs int64 `json:"query_time_ms"`
}
