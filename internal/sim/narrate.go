package sim

import "strings"

// article prefixes an item with "a" or "an" unless it already carries one.
func article(item string) string {
	if item == "" {
		return item
	}
	if strings.HasPrefix(item, "a ") || strings.HasPrefix(item, "an ") {
		return item
	}
	first := strings.ToLower(item[:1])
	if strings.ContainsAny(first, "aeiou") {
		return "an " + item
	}
	return "a " + item
}
