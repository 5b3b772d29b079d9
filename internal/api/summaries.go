package api

import (
	"context"
	"fmt"
	"time"

	"github.com/praxishq/praxis-client/internal/request"
	"github.com/praxishq/praxis-client/internal/types"
)

// GetAssessmentSummary retrieves the aggregate view for one assessment.
// Summary generation is the slowest backend path, so this opts in to retry.
func GetAssessmentSummary(ctx context.Context, ex *request.Executor, assessmentID string, maxRetries int, delay time.Duration) (*types.AssessmentSummary, error) {
	s, err := request.JSONWithRetry[types.AssessmentSummary](ctx, ex, request.Call{
		Path:     fmt.Sprintf("/v1/assessments/%s/summary", assessmentID),
		Endpoint: "assessments.summary",
	}, maxRetries, delay)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
