package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Organization represents an organization running assessments.
type Organization struct {
	ID        string    `json:"organizationId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Assessment represents one assessment within an organization.
type Assessment struct {
	ID             string    `json:"assessmentId"`
	OrganizationID string    `json:"organizationId"`
	Title          string    `json:"title"`
	Status         string    `json:"status"` // "draft", "active" or "closed"
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AssessmentSummary is the aggregate view rendered on the dashboard.
type AssessmentSummary struct {
	AssessmentID   string    `json:"assessmentId"`
	ResponseCount  int       `json:"responseCount"`
	CompletionRate float64   `json:"completionRate"`
	AverageScore   float64   `json:"averageScore"`
	GeneratedAt    time.Time `json:"generatedAt"`
}
