package policy

import (
	"fmt"
	"path"
	"strings"
)

// pattern is a compiled path pattern. A "*" segment matches exactly one path
// segment, "**" matches any number of segments including none, and other
// segments follow path.Match.
type pattern struct {
	raw  string
	segs []string
}

func compilePattern(raw string) (pattern, error) {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("pattern %q must start with /", raw)
	}
	segs := splitPath(raw)
	for _, s := range segs {
		if s == "**" {
			continue
		}
		if strings.Contains(s, "**") {
			return pattern{}, fmt.Errorf("pattern %q: ** must be a whole segment", raw)
		}
		if _, err := path.Match(s, s); err != nil {
			return pattern{}, fmt.Errorf("pattern %q: %w", raw, err)
		}
	}
	return pattern{raw: raw, segs: segs}, nil
}

func (p pattern) match(segs []string) bool {
	return matchSegments(p.segs, segs)
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			rest := pat[1:]
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(rest, segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		if ok, _ := path.Match(pat[0], segs[0]); !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}

// splitPath returns the segments of p as the router sees them. Dot segments
// are not resolved; a single leading and trailing slash are dropped and "/"
// yields none.
func splitPath(p string) []string {
	p = strings.TrimSuffix(strings.TrimPrefix(p, "/"), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// canonical reports whether segs contains no empty or dot segments.
func canonical(segs []string) bool {
	for _, s := range segs {
		if s == "" || s == "." || s == ".." {
			return false
		}
	}
	return true
}
