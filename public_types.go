package client

import (
	"github.com/praxishq/praxis-client/internal/history"
	"github.com/praxishq/praxis-client/internal/request"
	"github.com/praxishq/praxis-client/internal/rescache"
	"github.com/praxishq/praxis-client/internal/types"
)

// Public type aliases so consumers can import only the client package.

// Requests
type (
	CreateOrganizationRequest = types.CreateOrganizationRequest
	CreateAssessmentRequest   = types.CreateAssessmentRequest
	UpdateAssessmentRequest   = types.UpdateAssessmentRequest
	AssessmentFilter          = types.AssessmentFilter
)

// Domain entities
type (
	Organization      = types.Organization
	Assessment        = types.Assessment
	AssessmentSummary = types.AssessmentSummary
)

// Collaborator contracts, registered via options at construction time.
type (
	TokenProvider       = request.TokenProvider
	UnauthorizedHandler = request.UnauthorizedHandler
	CacheStore          = rescache.Store
)

// HistoryEntry is one recorded request outcome for the debug panel.
type HistoryEntry = history.Entry

// HistoryCapacity is the fixed size of the call history.
const HistoryCapacity = history.Capacity

// Logical cache keys, exported so external cache collaborators and tests can
// reason about invalidation.
const (
	CacheKeyOrganizations = rescache.KeyOrganizations
	CacheKeyAssessments   = rescache.KeyAssessments
)

// AssessmentSummaryCacheKey returns the per-assessment summary cache key.
func AssessmentSummaryCacheKey(assessmentID string) string {
	return rescache.AssessmentSummaryKey(assessmentID)
}

// Errors re-exported in errors.go
