package components

import (
	"fmt"
	"strings"
)

type ActionKind string

const (
	ActionGuildApprove   ActionKind = "guild_approve"
	ActionGuildReject    ActionKind = "guild_reject"
	ActionRequestApprove ActionKind = "request_approve"
	ActionRequestReject  ActionKind = "request_reject"
	ActionRoleSelect     ActionKind = "role_select"
)

// Action is a decoded component custom ID. Kind names the intended
// operation, TargetID the entity it applies to: a guild ID for guild
// decisions, a requester ID for request decisions and role selection.
type Action struct {
	Kind     ActionKind
	TargetID string
}

func (a Action) CustomID() string {
	return string(a.Kind) + ":" + a.TargetID
}

// ParseAction decodes a custom ID once at the boundary. Everything the
// bot did not emit itself is rejected.
func ParseAction(customID string) (Action, error) {
	kind, targetID, found := strings.Cut(customID, ":")
	if !found || targetID == "" {
		return Action{}, fmt.Errorf("malformed custom id: %q", customID)
	}

	switch ActionKind(kind) {
	case ActionGuildApprove, ActionGuildReject, ActionRequestApprove, ActionRequestReject, ActionRoleSelect:
		return Action{Kind: ActionKind(kind), TargetID: targetID}, nil
	}

	return Action{}, fmt.Errorf("unknown action kind: %q", kind)
}
