package index

import (
	"sort"

	"emoji-sync/core/discord"
)

const (
	// ListFile is the generated machine-readable entry list.
	ListFile = "list.json"
	// DeclarationFile is the generated name declaration.
	DeclarationFile = "emojis.d.ts"
)

// Entry is one generated index record.
type Entry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// Identifier returns the chat markup token for an emoji: <:name:id>, or
// <a:name:id> when animated.
func Identifier(name, id string, animated bool) string {
	prefix := ""
	if animated {
		prefix = "a"
	}
	return "<" + prefix + ":" + name + ":" + id + ">"
}

// BuildEntries converts remote emojis to entries sorted by name.
func BuildEntries(emojis []discord.Emoji) []Entry {
	entries := make([]Entry, 0, len(emojis))
	for _, e := range emojis {
		entries = append(entries, Entry{
			ID:         e.ID,
			Name:       e.Name,
			Identifier: Identifier(e.Name, e.ID, e.Animated),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}
