package model

import "strings"

// EntityPath addresses one source of samples as a hierarchical path of
// slash-separated segments, e.g. "motor/axis1/torque". The string form is
// the canonical representation: equality and map-key use are cheap.
type EntityPath string

// Domain is a top-level grouping key: the first path segment. It owns no
// data of its own.
type Domain = string

// Segments returns the ordered path segments. Empty segments produced by
// leading, trailing, or doubled slashes are dropped.
func (p EntityPath) Segments() []string {
	var segs []string
	for _, s := range strings.Split(string(p), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Domain returns the first path segment, or "" for an empty path.
func (p EntityPath) Domain() Domain {
	s := string(p)
	for s != "" && s[0] == '/' {
		s = s[1:]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}

func (p EntityPath) String() string {
	return string(p)
}
