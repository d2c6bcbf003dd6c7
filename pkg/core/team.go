package core

import "strings"

// Team is the externally supplied context a slot belongs to.
type Team struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"` // #rrggbb
}

// DefaultTeams is the built-in team catalog.
var DefaultTeams = []Team{
	{Name: "Pink Team", Color: "#ff69b4"},
	{Name: "Blue Team", Color: "#3b82f6"},
	{Name: "Purple Team", Color: "#a855f7"},
	{Name: "Green Team", Color: "#22c55e"},
	{Name: "Orange Team", Color: "#f97316"},
}

// LookupTeam finds a team by display name or team id, ignoring case.
func LookupTeam(teams []Team, name string) (Team, bool) {
	id := TeamID(name)
	for _, t := range teams {
		if strings.EqualFold(t.Name, name) || TeamID(t.Name) == id {
			return t, true
		}
	}
	return Team{}, false
}
