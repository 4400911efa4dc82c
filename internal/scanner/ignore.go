package scanner

import (
	"path"
	"strings"
)

// IgnorePattern is a single gitignore-style pattern. Supported forms:
// negation ("!keep.js"), directory patterns ("build/"), root-anchored
// patterns ("/src/gen"), and shell globs including "**".
type IgnorePattern struct {
	Negated bool

	segments []string
	anchored bool
	dirOnly  bool
}

// ParseIgnorePattern parses one pattern line.
func ParseIgnorePattern(line string) IgnorePattern {
	p := IgnorePattern{}
	if strings.HasPrefix(line, "!") {
		p.Negated = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		p.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		p.anchored = true
		line = line[1:]
	}
	p.segments = strings.Split(line, "/")
	return p
}

// Match reports whether relPath (forward slashes) matches the pattern. A
// directory pattern matches every path under that directory.
func (p IgnorePattern) Match(relPath string) bool {
	pathSegs := strings.Split(relPath, "/")
	if p.anchored {
		return p.matchFrom(pathSegs)
	}
	for i := range pathSegs {
		if p.matchFrom(pathSegs[i:]) {
			return true
		}
	}
	return false
}

func (p IgnorePattern) matchFrom(pathSegs []string) bool {
	return matchSegments(p.segments, pathSegs, p.dirOnly)
}

// matchSegments matches pattern segments against path segments. With
// dirPrefix set, a full pattern match may leave trailing path segments
// (files inside the matched directory).
func matchSegments(patternSegs, pathSegs []string, dirPrefix bool) bool {
	if len(patternSegs) == 0 {
		return dirPrefix || len(pathSegs) == 0
	}

	if patternSegs[0] == "**" {
		for i := 0; i <= len(pathSegs); i++ {
			if matchSegments(patternSegs[1:], pathSegs[i:], dirPrefix) {
				return true
			}
		}
		return false
	}

	if len(pathSegs) == 0 {
		return false
	}
	if ok, err := path.Match(patternSegs[0], pathSegs[0]); err != nil || !ok {
		return false
	}
	return matchSegments(patternSegs[1:], pathSegs[1:], dirPrefix)
}
