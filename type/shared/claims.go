package shared

import "github.com/golang-jwt/jwt/v4"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// UserClaims identifies a member by KOALM number. Admin tokens may act on any member.
type UserClaims struct {
	Koalm *string `json:"koalm"`
	Role  *string `json:"role"`
	jwt.RegisteredClaims
}

func (c *UserClaims) KoalmNumber() string {
	if c == nil || c.Koalm == nil {
		return ""
	}
	return *c.Koalm
}

// EffectiveRole falls back to member for tokens issued without a role.
func (c *UserClaims) EffectiveRole() string {
	if c == nil || c.Role == nil || *c.Role == "" {
		return RoleMember
	}
	return *c.Role
}
