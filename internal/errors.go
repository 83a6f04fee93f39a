package internal

import "errors"

// Authorization failures.
var (
	ErrNotOwner           = errors.New("only the bot owner may do this")
	ErrNotAdmin           = errors.New("only administrators may do this")
	ErrNotPrimaryAdmin    = errors.New("only primary administrators may do this")
	ErrGuildNotAuthorized = errors.New("guild is not authorized to use the bot")
	ErrGuildNotFound      = errors.New("guild not found")
)

// Configuration failures.
var (
	ErrNotConfigured    = errors.New("request, approval and results channels are not configured")
	ErrNoGrantableRoles = errors.New("no grantable roles configured")
	ErrNotPresent       = errors.New("entry not present")
)

// Request lifecycle failures.
var (
	ErrAlreadyPending  = errors.New("a pending request already exists")
	ErrRequestNotFound = errors.New("request not found")
	ErrNotPending      = errors.New("request is not pending")
)
