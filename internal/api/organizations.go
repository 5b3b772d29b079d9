// Package api composes one function per backend operation over the request
// executor. Each function is stateless: it serializes the payload, names the
// logical endpoint and declares the expected response shape. Caching and
// invalidation are composed a layer above, in the client bindings.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/praxishq/praxis-client/internal/request"
	"github.com/praxishq/praxis-client/internal/types"
)

// ListOrganizations returns all organizations. Read endpoint; opts in to
// retry because the backend list view suffers cold-start latency.
func ListOrganizations(ctx context.Context, ex *request.Executor, maxRetries int, delay time.Duration) ([]types.Organization, error) {
	lr, err := request.JSONWithRetry[types.ListOrganizationsResponse](ctx, ex, request.Call{
		Path:     "/v1/organizations",
		Endpoint: "organizations.list",
	}, maxRetries, delay)
	if err != nil {
		return nil, err
	}
	return lr.Organizations, nil
}

// GetOrganization retrieves one organization by id.
func GetOrganization(ctx context.Context, ex *request.Executor, orgID string) (*types.Organization, error) {
	org, err := request.JSON[types.Organization](ctx, ex, request.Call{
		Path:     fmt.Sprintf("/v1/organizations/%s", orgID),
		Endpoint: "organizations.get",
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateOrganization creates a new organization. Callers must invalidate the
// organization list key after success.
func CreateOrganization(ctx context.Context, ex *request.Executor, req types.CreateOrganizationRequest) (*types.Organization, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	org, err := request.JSON[types.Organization](ctx, ex, request.Call{
		Method:   http.MethodPost,
		Path:     "/v1/organizations",
		Endpoint: "organizations.create",
		Body:     body,
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization removes an organization. Backend returns 204 No Content.
func DeleteOrganization(ctx context.Context, ex *request.Executor, orgID string) error {
	_, err := ex.Do(ctx, request.Call{
		Method:   http.MethodDelete,
		Path:     fmt.Sprintf("/v1/organizations/%s", orgID),
		Endpoint: "organizations.delete",
	})
	return err
}
