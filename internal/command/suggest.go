package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxDistance = 3

type suggestion struct {
	name     string
	distance int
}

// Similar returns up to maxResults primary names close to input, nearest
// first. Aliases count towards the distance but are never suggested.
func Similar(input string, commands []*Command, maxResults int) []string {
	input = strings.ToLower(input)
	if input == "" {
		return nil
	}

	var suggestions []suggestion
	for _, cmd := range commands {
		best := -1
		for _, name := range cmd.names {
			dist := levenshtein.ComputeDistance(input, strings.ToLower(name))
			if best < 0 || dist < best {
				best = dist
			}
		}
		if best > 0 && best <= maxDistance {
			suggestions = append(suggestions, suggestion{name: cmd.Name(), distance: best})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
