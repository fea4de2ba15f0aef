package model

import "time"

// Resource is a support contact or service offered to a user.
type Resource struct {
	ID                 string
	Title              string
	Description        string
	ResourceType       string
	UrgencyLevel       UrgencyLevel
	Phone              string
	Email              string
	WebsiteURL         string
	Address            string
	HoursOfOperation   string
	Available247       bool
	LanguagesSupported []Language
	LocationSpecific   string
	UsageCount         int
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Supports reports whether the resource can be offered in lang.
func (r Resource) Supports(lang Language) bool {
	for _, l := range r.LanguagesSupported {
		if l == lang {
			return true
		}
	}
	return false
}

// Trigger is a stored phrase mapped to a concern level.
// Phrase and Language together are unique.
type Trigger struct {
	ID                   string
	Phrase               string
	Language             Language
	ConcernLevel         ConcernLevel
	SuggestedResourceIDs []string
	Active               bool
	CreatedAt            time.Time
}
