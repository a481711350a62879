package event

import "strings"

// Topic is a dot separated event address, e.g. "catalog.loaded".
type Topic string

// Wildcards accepted in subscription patterns.
const (
	WildcardSingle = "*"
	WildcardMulti  = "**"

	separator = "."
)

// Topics published by the application.
const (
	TopicGridReady      Topic = "grid.ready"
	TopicNavMoved       Topic = "nav.moved"
	TopicNavRejected    Topic = "nav.rejected"
	TopicCatalogLoaded  Topic = "catalog.loaded"
	TopicCatalogFailed  Topic = "catalog.failed"
	TopicConfigReloaded Topic = "config.reloaded"
)

func (t Topic) String() string {
	return string(t)
}

// Segments splits the topic on dots.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), separator)
}

// IsValid reports whether t is non-empty and has no empty segments.
func (t Topic) IsValid() bool {
	if t == "" {
		return false
	}
	for _, seg := range t.Segments() {
		if seg == "" {
			return false
		}
	}
	return true
}

// IsPattern reports whether t contains a wildcard segment.
func (t Topic) IsPattern() bool {
	for _, seg := range t.Segments() {
		if seg == WildcardSingle || seg == WildcardMulti {
			return true
		}
	}
	return false
}

// Matches reports whether t matches pattern.
func (t Topic) Matches(pattern Topic) bool {
	return matchSegments(t.Segments(), pattern.Segments())
}

func matchSegments(topic, pattern []string) bool {
	for len(pattern) > 0 {
		head := pattern[0]
		if head == WildcardMulti {
			rest := pattern[1:]
			for i := 0; i <= len(topic); i++ {
				if matchSegments(topic[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(topic) == 0 {
			return false
		}
		if head != WildcardSingle && head != topic[0] {
			return false
		}
		topic, pattern = topic[1:], pattern[1:]
	}
	return len(topic) == 0
}
