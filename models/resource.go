package models

import "time"

// Resource type values accepted from clients.
const (
	ResourceTypeArticle       = "article"
	ResourceTypeVideo         = "video"
	ResourceTypeCourse        = "course"
	ResourceTypeDocumentation = "documentation"
	ResourceTypePaper         = "paper"
)

// Rating is a single user's score for one resource. At most one per
// (resource, userId); a rating of 0 means "remove mine" and is never stored.
type Rating struct {
	UserID   string    `json:"userId"`
	UserName string    `json:"userName,omitempty"`
	Rating   int       `json:"rating"`
	RatedAt  time.Time `json:"ratedAt"`
}

// Resource is a learning-material reference. The URL is its identity:
// two records with the same URL are the same resource and get merged.
type Resource struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"`
	Summary string `json:"summary,omitempty"`

	// Rating is the legacy single-value score kept for pre-multi-user data.
	Rating  float64  `json:"rating,omitempty"`
	Ratings []Rating `json:"ratings,omitempty"`

	// UserAdded distinguishes manually submitted resources from
	// auto-collected ones. A nil pointer means "not stated", which matters
	// during merging: an explicit value always wins over the existing one.
	UserAdded *bool  `json:"userAdded,omitempty"`
	AddedBy   string `json:"addedBy,omitempty"`
	AddedAt   string `json:"addedAt,omitempty"`
}

func IsValidResourceType(t string) bool {
	switch t {
	case ResourceTypeArticle, ResourceTypeVideo, ResourceTypeCourse,
		ResourceTypeDocumentation, ResourceTypePaper:
		return true
	}
	return false
}
