package services

import "github.com/google/uuid"

// PolicyAction names a mutation guarded by an authorization rule.
type PolicyAction string

const (
	ActionPostDelete    = PolicyAction("posts.delete")
	ActionCommentUpdate = PolicyAction("comments.update")
	ActionCommentDelete = PolicyAction("comments.delete")
)

type policyRule func(actor uuid.UUID, isAdmin bool, owner uuid.UUID) bool

func ownerOnly(actor uuid.UUID, _ bool, owner uuid.UUID) bool {
	return actor == owner
}

func ownerOrAdmin(actor uuid.UUID, isAdmin bool, owner uuid.UUID) bool {
	return isAdmin || actor == owner
}

// The rules are deliberately asymmetric: administrators may take down any
// post, but comments belong to their author alone.
var policies = map[PolicyAction]policyRule{
	ActionPostDelete:    ownerOrAdmin,
	ActionCommentUpdate: ownerOnly,
	ActionCommentDelete: ownerOnly,
}

func Allowed(action PolicyAction, actor uuid.UUID, isAdmin bool, owner uuid.UUID) bool {
	rule, ok := policies[action]
	if !ok {
		return false
	}
	return rule(actor, isAdmin, owner)
}
