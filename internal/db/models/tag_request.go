package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

// TagRequest is a user's single tag-request slot. A user has at most one
// record at any time; a resolved record is overwritten by the user's next
// submission.
type TagRequest struct {
	RequesterID   string        `json:"requester_id"`
	GuildID       string        `json:"guild_id"`
	Name          string        `json:"name"`
	ExternalID    string        `json:"external_id"`
	Status        RequestStatus `json:"status"`
	DecidedBy     string        `json:"decided_by,omitempty"`
	GrantedRoleID string        `json:"granted_role_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (r *TagRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// Nickname is the display name applied to an approved requester.
func (r *TagRequest) Nickname(roleName string) string {
	return roleName + " " + r.Name + " | " + r.ExternalID
}
