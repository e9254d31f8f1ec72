package transaction

import (
	"sort"
	"strings"
)

// TeamGroup is one team's transactions in display order.
type TeamGroup struct {
	TeamName     string
	Transactions []Resolved
}

// GroupByTeam partitions items by resolved team name. Relative order inside
// a group follows the input. Groups are ordered by name with UnknownTeam
// last; unresolved rows are never dropped.
func GroupByTeam(items []Resolved) []TeamGroup {
	index := make(map[string]int)
	groups := make([]TeamGroup, 0)
	for _, item := range items {
		name := strings.TrimSpace(item.TeamName)
		if name == "" {
			name = UnknownTeam
		}
		pos, ok := index[name]
		if !ok {
			pos = len(groups)
			index[name] = pos
			groups = append(groups, TeamGroup{TeamName: name})
		}
		groups[pos].Transactions = append(groups[pos].Transactions, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].TeamName, groups[j].TeamName
		if a == UnknownTeam || b == UnknownTeam {
			return b == UnknownTeam && a != UnknownTeam
		}
		return a < b
	})
	return groups
}

// SortForDisplay orders by team name, then transac_date descending.
func SortForDisplay(items []Resolved) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TransacDate.After(b.TransacDate)
	})
}
