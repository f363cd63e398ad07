package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recordquery/internal/clock"
	"recordquery/internal/model"
)

// PresignExpiry is how long an archived report link stays valid.
const PresignExpiry = 15 * time.Minute

// ReportArchive stores benchmark reports as JSON objects.
type ReportArchive struct {
	store Storage
	clock clock.Clock
}

// NewReportArchive wraps store. A nil clock uses the wall clock.
func NewReportArchive(store Storage, clk clock.Clock) *ReportArchive {
	if clk == nil {
		clk = clock.System()
	}
	return &ReportArchive{store: store, clock: clk}
}

// Key returns the object key for a report archived at t.
func Key(t time.Time, id string) string {
	return fmt.Sprintf("reports/%s/benchmark-%s-%s.json", t.UTC().Format("2006/01/02"), t.UTC().Format("150405"), id)
}

// Archive uploads report and returns a presigned download URL.
func (a *ReportArchive) Archive(ctx context.Context, report *model.BenchmarkReport) (string, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	key := Key(a.clock.Now(), uuid.NewString())
	if _, err := a.store.Put(ctx, key, bytes.NewReader(body), PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"queries": fmt.Sprint(len(report.IndividualQueries))},
	}); err != nil {
		return "", fmt.Errorf("put report %s: %w", key, err)
	}

	u, err := a.store.PresignGet(ctx, key, PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign report %s: %w", key, err)
	}
	return u, nil
}
