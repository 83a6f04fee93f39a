package models

// RoleEntry is a grantable role. Entries keep insertion order, which is
// also the display order.
type RoleEntry struct {
	RoleID string `json:"role_id"`
	Name   string `json:"name"`
}

// AdminEntry is an additional admin granted bot-admin rights by a primary
// admin.
type AdminEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type GuildConfig struct {
	RequestChannelID  string       `json:"request_channel_id,omitempty"`
	ApprovalChannelID string       `json:"approval_channel_id,omitempty"`
	ResultsChannelID  string       `json:"results_channel_id,omitempty"`
	GrantableRoles    []RoleEntry  `json:"grantable_roles,omitempty"`
	AdditionalAdmins  []AdminEntry `json:"additional_admins,omitempty"`
}

// IsConfigured reports whether all three destination channels are set.
// Requests cannot be created until they are.
func (c *GuildConfig) IsConfigured() bool {
	return c != nil &&
		c.RequestChannelID != "" &&
		c.ApprovalChannelID != "" &&
		c.ResultsChannelID != ""
}

func (c *GuildConfig) GrantableRole(roleID string) (RoleEntry, bool) {
	if c == nil {
		return RoleEntry{}, false
	}
	for _, role := range c.GrantableRoles {
		if role.RoleID == roleID {
			return role, true
		}
	}
	return RoleEntry{}, false
}

func (c *GuildConfig) HasAdditionalAdmin(userID string) bool {
	for _, admin := range c.AdditionalAdmins {
		if admin.UserID == userID {
			return true
		}
	}
	return false
}
