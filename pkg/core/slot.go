package core

import "strings"

// DefaultNamespace prefixes every slot key.
const DefaultNamespace = "succinct-notes"

// SlotKey addresses the persisted note list of one (team, theme) pair.
type SlotKey string

// NewSlotKey derives the slot key for a team and theme.
// The team name is lower-cased and each run of whitespace becomes a dash,
// so "Pink Team" maps to "pink-team". The theme is used verbatim.
func NewSlotKey(namespace, team, theme string) SlotKey {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return SlotKey(namespace + "-" + TeamID(team) + "-" + theme)
}

// TeamID normalizes a team display name into its key form.
func TeamID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (k SlotKey) String() string {
	return string(k)
}
