package service

import (
	"fmt"

	"github.com/msomdec/postboard/internal/domain"
)

// Action is an operation gated by the Authorizer.
type Action string

const (
	ActionReadPosts  Action = "read_posts"
	ActionAddComment Action = "add_comment"
	ActionCreatePost Action = "create_post"
	ActionAssignRole Action = "assign_role"
)

// policy lists the roles allowed per action. A nil entry means any
// authenticated identity; actions missing from the map are public.
var policy = map[Action][]domain.Role{
	ActionAddComment: nil,
	ActionCreatePost: {domain.RoleAuthor, domain.RoleAdmin},
	ActionAssignRole: {domain.RoleAdmin},
}

// Authorizer maps an identity's role to an allow/deny decision.
type Authorizer struct{}

// NewAuthorizer creates an Authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Authorize returns nil when identity may perform action. A nil identity
// is anonymous.
func (a *Authorizer) Authorize(identity *domain.Identity, action Action) error {
	roles, protected := policy[action]
	if !protected {
		return nil
	}
	if identity == nil {
		return fmt.Errorf("%w: %s requires authentication", domain.ErrUnauthorized, action)
	}
	if roles == nil {
		return nil
	}
	for _, r := range roles {
		if identity.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not %s", domain.ErrForbidden, identity.Role, action)
}
