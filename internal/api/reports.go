package api

import (
	"context"
	"fmt"

	"github.com/praxishq/praxis-client/internal/request"
)

// DownloadReport fetches the rendered report for an assessment as raw bytes.
// The response is binary (PDF or CSV depending on backend configuration) and
// bypasses JSON decoding. Never cached and never retried: the download is
// large and the caller drives it interactively.
func DownloadReport(ctx context.Context, ex *request.Executor, assessmentID string) ([]byte, error) {
	return ex.Do(ctx, request.Call{
		Path:     fmt.Sprintf("/v1/assessments/%s/report", assessmentID),
		Endpoint: "assessments.report",
	})
}
