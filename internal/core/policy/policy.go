// Package policy decides which requests need an identity and which roles a
// route demands. Rules are evaluated in order and the first match wins, so
// specific patterns must precede broader ones covering the same paths.
package policy

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

// AnyMethod matches every HTTP method.
const AnyMethod = "*"

// Rule binds a method and path pattern to the roles allowed through it. An
// empty Roles list admits any authenticated identity.
type Rule struct {
	Method  string        `yaml:"method"`
	Pattern string        `yaml:"pattern"`
	Roles   []domain.Role `yaml:"roles"`
}

type compiledRule struct {
	method  string
	pattern pattern
	roles   []domain.Role
}

// Policy is an immutable, compiled rule table. It is safe for concurrent use.
type Policy struct {
	public []pattern
	rules  []compiledRule
}

// New compiles public patterns and rules, rejecting empty or malformed
// patterns, unknown methods and unknown roles.
func New(public []string, rules []Rule) (*Policy, error) {
	p := &Policy{}

	for _, raw := range public {
		pat, err := compilePattern(raw)
		if err != nil {
			return nil, fmt.Errorf("public: %w", err)
		}
		p.public = append(p.public, pat)
	}

	for i, r := range rules {
		pat, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		method, err := normalizeMethod(r.Method)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		for _, role := range r.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("rule %d: unknown role %q", i, role)
			}
		}
		p.rules = append(p.rules, compiledRule{
			method:  method,
			pattern: pat,
			roles:   append([]domain.Role(nil), r.Roles...),
		})
	}

	return p, nil
}

func normalizeMethod(m string) (string, error) {
	m = strings.ToUpper(strings.TrimSpace(m))
	switch m {
	case "", AnyMethod:
		return AnyMethod, nil
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return m, nil
	}
	return "", fmt.Errorf("unknown method %q", m)
}

// IsPublic reports whether path is reachable without an identity. Paths with
// empty or dot segments are never public.
func (p *Policy) IsPublic(path string) bool {
	segs := splitPath(path)
	if !canonical(segs) {
		return false
	}
	for _, pat := range p.public {
		if pat.match(segs) {
			return true
		}
	}
	return false
}

// Authorize returns nil when id may call method on path. It returns
// domain.ErrUnauthenticated when a non-public path is called without an
// identity and domain.ErrForbidden when the first matching rule demands a
// role id does not hold. Paths no rule matches require authentication only.
// Paths with empty or dot segments are refused to every identity.
func (p *Policy) Authorize(id *domain.Identity, method, path string) error {
	if p.IsPublic(path) {
		return nil
	}
	if id == nil {
		return domain.ErrUnauthenticated
	}

	segs := splitPath(path)
	if !canonical(segs) {
		return domain.ErrForbidden
	}
	method = strings.ToUpper(method)
	for _, r := range p.rules {
		if r.method != AnyMethod && r.method != method {
			continue
		}
		if !r.pattern.match(segs) {
			continue
		}
		if len(r.roles) == 0 || id.HasAnyRole(r.roles...) {
			return nil
		}
		return domain.ErrForbidden
	}
	return nil
}
