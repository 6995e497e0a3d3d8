package patch

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🧭 anchor is a named pattern that locates one rewrite site in a page
// buffer. Every anchor is match-or-fail: an anchor that finds nothing is an
// error, never a silent no-op.
type anchor struct {
	name string
	re   *regexp.Regexp
}

// 🔍 newAnchor compiles an anchor pattern
func newAnchor(name, pattern string) anchor {
	return anchor{name: name, re: regexp.MustCompile(pattern)}
}

// 📝 rewriteFirst replaces the first match with the expanded template.
// The template may reference capture groups as ${1}, ${2}, etc.
func (a anchor) rewriteFirst(content, template string) (string, error) {
	m := a.re.FindStringSubmatchIndex(content)
	if m == nil {
		return "", errors.Errorf("anchor %q: pattern not found", a.name)
	}

	var buf []byte
	buf = append(buf, content[:m[0]]...)
	buf = a.re.ExpandString(buf, template, content, m)
	buf = append(buf, content[m[1]:]...)
	return string(buf), nil
}

// 📝 rewriteAll replaces every match with the expanded template, requiring
// at least one match.
func (a anchor) rewriteAll(content, template string) (string, error) {
	if !a.re.MatchString(content) {
		return "", errors.Errorf("anchor %q: pattern not found", a.name)
	}
	return a.re.ReplaceAllString(content, template), nil
}

// 🔍 matches reports whether the anchor is present at all
func (a anchor) matches(content string) bool {
	return a.re.MatchString(content)
}
