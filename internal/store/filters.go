package store

import (
	"sort"
	"strings"

	"github.com/username/holiday-tracker/internal/model"
)

// RoleFilterAll matches every role.
const RoleFilterAll = "ALL"

// RoleOptions returns the distinct role names in the roster, sorted.
// Duplicate casings collapse to the first casing seen, so the filter list
// stays short even when role buckets are case sensitive.
func RoleOptions(people []model.Person) []string {
	seen := make(map[string]string)
	for _, person := range people {
		role := strings.TrimSpace(person.Role)
		if role == "" {
			continue
		}
		key := strings.ToLower(role)
		if _, ok := seen[key]; !ok {
			seen[key] = role
		}
	}

	options := make([]string, 0, len(seen))
	for _, role := range seen {
		options = append(options, role)
	}
	sort.Strings(options)
	return options
}

// FilterPeople narrows the roster by a case-insensitive name substring and
// an exact trimmed-role match. Empty search and RoleFilterAll match
// everyone.
func FilterPeople(people []model.Person, nameSearch, roleFilter string) []model.Person {
	nameQuery := strings.ToLower(strings.TrimSpace(nameSearch))
	if roleFilter == "" {
		roleFilter = RoleFilterAll
	}

	var matched []model.Person
	for _, person := range people {
		matchesName := nameQuery == "" || strings.Contains(strings.ToLower(person.Name), nameQuery)
		matchesRole := roleFilter == RoleFilterAll || strings.TrimSpace(person.Role) == roleFilter

		if matchesName && matchesRole {
			matched = append(matched, person)
		}
	}
	return matched
}
