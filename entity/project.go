package entity

import "time"

type Project struct {
	Key           string      `json:"key"`
	Account       string      `json:"account,omitempty"`
	Name          string      `json:"name,omitempty"`
	Network       string      `json:"network,omitempty"`
	Deployed      bool        `json:"deployed"`
	LogoURL       string      `json:"logoUrl,omitempty"`
	Subtitle      string      `json:"subtitle,omitempty"`
	Description   string      `json:"description,omitempty"`
	GitRepository string      `json:"gitRepository,omitempty"`
	Hide          bool        `json:"hide"`
	DedicateDBKey string      `json:"dedicateDBKey,omitempty"`
	QueryURL      string      `json:"queryUrl,omitempty"`
	Deployment    *Deployment `json:"deployment,omitempty"`
	CreatedAt     *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

// Slug returns the part of the key after the org.
func (p *Project) Slug() string {
	_, slug := SplitProjectKey(p.Key)
	return slug
}

type CreateProjectRequest struct {
	Key           string  `json:"key"`                   // Required
	Account       string  `json:"account"`               // Required
	Name          string  `json:"name"`                  // Required
	Subtitle      *string `json:"subtitle,omitempty"`    // Optional
	Description   *string `json:"description,omitempty"` // Optional
	GitRepository string  `json:"gitRepository"`         // Required
	Hide          bool    `json:"hide"`
}

type CreateProjectResponse struct {
	Key string `json:"key"`
}

type UpdateProjectRequest struct {
	Key         string  `json:"key"`                   // Required
	Name        *string `json:"name,omitempty"`        // Optional
	Subtitle    *string `json:"subtitle,omitempty"`    // Optional
	Description *string `json:"description,omitempty"` // Optional
	Hide        *bool   `json:"hide,omitempty"`        // Optional
}
