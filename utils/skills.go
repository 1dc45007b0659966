package utils

import "strings"

// SplitSkills turns a comma separated skills string into a trimmed list,
// dropping empty entries.
func SplitSkills(s string) []string {
	skills := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// NormalizeSkills accepts skills either as a comma separated string or as a
// list (the two shapes clients send) and returns a trimmed list. A nil result
// means the value had neither shape or was empty.
func NormalizeSkills(v interface{}) []string {
	switch skills := v.(type) {
	case string:
		if list := SplitSkills(skills); len(list) > 0 {
			return list
		}
	case []string:
		out := []string{}
		for _, s := range skills {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	case []interface{}:
		out := []string{}
		for _, item := range skills {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
