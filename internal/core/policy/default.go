package policy

import "github.com/hobbie/hobbie-backend/internal/core/domain"

// DefaultPublic lists the routes served without an identity.
var DefaultPublic = []string{
	"/authenticate",
	"/api/v1/auth/**",
	"/signup",
	"/register",
	"/notification",
	"/password",
	"/health",
	"/health/**",
	"/metrics",
	"/swagger/**",
	"/oauth2/**",
	"/login/oauth2/**",
}

var (
	userOnly     = []domain.Role{domain.RoleUser}
	businessOnly = []domain.Role{domain.RoleBusinessUser}
)

// DefaultRules is the built-in table. The favorites endpoints live under
// /hobbies and are listed before the broader business rules so that a
// DELETE /hobbies/remove is judged as a USER action.
var DefaultRules = []Rule{
	{Method: AnyMethod, Pattern: "/api/v1/admin/**", Roles: []domain.Role{domain.RoleAdmin}},

	{Method: "POST", Pattern: "/hobbies/save", Roles: userOnly},
	{Method: "DELETE", Pattern: "/hobbies/remove", Roles: userOnly},
	{Method: AnyMethod, Pattern: "/hobbies/saved", Roles: userOnly},
	{Method: "GET", Pattern: "/hobbies/is-saved", Roles: userOnly},

	{Method: "POST", Pattern: "/hobbies", Roles: businessOnly},
	{Method: "PUT", Pattern: "/hobbies", Roles: businessOnly},
	{Method: "DELETE", Pattern: "/hobbies/**", Roles: businessOnly},
	{Method: AnyMethod, Pattern: "/business/**", Roles: businessOnly},
	{Method: AnyMethod, Pattern: "/client/**", Roles: userOnly},
	{Method: AnyMethod, Pattern: "/test/**", Roles: userOnly},

	{Method: "GET", Pattern: "/hobbies/*", Roles: []domain.Role{domain.RoleUser, domain.RoleBusinessUser}},

	{Method: AnyMethod, Pattern: "/home"},
	{Method: AnyMethod, Pattern: "/hobbies/**"},
	{Method: AnyMethod, Pattern: "/user/**"},
}

// Default returns the built-in policy.
func Default() *Policy {
	p, err := New(DefaultPublic, DefaultRules)
	if err != nil {
		panic(err)
	}
	return p
}
