package types

// ------------------------------
// Response Envelopes
// ------------------------------

// ListOrganizationsResponse wraps the organization collection.
type ListOrganizationsResponse struct {
	Organizations []Organization `json:"organizations"`
	Count         int            `json:"count"`
}

// ListAssessmentsResponse wraps the assessment collection.
type ListAssessmentsResponse struct {
	Assessments []Assessment `json:"assessments"`
	Count       int          `json:"count"`
}
