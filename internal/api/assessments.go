package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/praxishq/praxis-client/internal/request"
	"github.com/praxishq/praxis-client/internal/types"
)

// ListAssessments returns assessments, optionally narrowed by filter. The
// filter becomes query parameters; the caller decides whether the unfiltered
// variant is served from the cache.
func ListAssessments(ctx context.Context, ex *request.Executor, filter *types.AssessmentFilter, maxRetries int, delay time.Duration) ([]types.Assessment, error) {
	path := "/v1/assessments"
	if filter != nil {
		q := url.Values{}
		if filter.OrganizationID != "" {
			q.Set("organizationId", filter.OrganizationID)
		}
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		if enc := q.Encode(); enc != "" {
			path += "?" + enc
		}
	}
	lr, err := request.JSONWithRetry[types.ListAssessmentsResponse](ctx, ex, request.Call{
		Path:     path,
		Endpoint: "assessments.list",
	}, maxRetries, delay)
	if err != nil {
		return nil, err
	}
	return lr.Assessments, nil
}

// GetAssessment retrieves one assessment by id.
func GetAssessment(ctx context.Context, ex *request.Executor, assessmentID string) (*types.Assessment, error) {
	a, err := request.JSON[types.Assessment](ctx, ex, request.Call{
		Path:     fmt.Sprintf("/v1/assessments/%s", assessmentID),
		Endpoint: "assessments.get",
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAssessment creates an assessment. Callers must invalidate the
// assessment list key after success.
func CreateAssessment(ctx context.Context, ex *request.Executor, req types.CreateAssessmentRequest) (*types.Assessment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	a, err := request.JSON[types.Assessment](ctx, ex, request.Call{
		Method:   http.MethodPost,
		Path:     "/v1/assessments",
		Endpoint: "assessments.create",
		Body:     body,
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAssessment applies a partial update. Callers must invalidate the
// assessment list key and the assessment's summary key after success.
func UpdateAssessment(ctx context.Context, ex *request.Executor, assessmentID string, req types.UpdateAssessmentRequest) (*types.Assessment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	a, err := request.JSON[types.Assessment](ctx, ex, request.Call{
		Method:   http.MethodPatch,
		Path:     fmt.Sprintf("/v1/assessments/%s", assessmentID),
		Endpoint: "assessments.update",
		Body:     body,
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAssessment removes an assessment. Backend returns 204 No Content.
// Callers must invalidate the assessment list key and the assessment's
// summary key after success.
func DeleteAssessment(ctx context.Context, ex *request.Executor, assessmentID string) error {
	_, err := ex.Do(ctx, request.Call{
		Method:   http.MethodDelete,
		Path:     fmt.Sprintf("/v1/assessments/%s", assessmentID),
		Endpoint: "assessments.delete",
	})
	return err
}
