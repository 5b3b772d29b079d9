package types

// ------------------------------
// Request Payloads
// ------------------------------

// CreateOrganizationRequest creates a new organization.
type CreateOrganizationRequest struct {
	Name string `json:"name"`
}

// CreateAssessmentRequest creates an assessment under an organization.
type CreateAssessmentRequest struct {
	OrganizationID string `json:"organizationId"`
	Title          string `json:"title"`
}

// UpdateAssessmentRequest carries a partial update; nil fields are left
// unchanged by the backend.
type UpdateAssessmentRequest struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty"`
}

// AssessmentFilter narrows ListAssessments. A nil filter means the unfiltered
// list, which is the only variant served from the cache.
type AssessmentFilter struct {
	OrganizationID string
	Status         string
}
