package discord

// Emoji is an application emoji as registered on the remote side.
type Emoji struct {
	// ID is assigned by Discord on creation.
	ID string `json:"id"`
	// Name is unique among the application's current emojis.
	Name string `json:"name"`
	// Animated is true for GIF/APNG uploads.
	Animated bool `json:"animated"`
}

// Names returns the emoji names in the order given.
func Names(emojis []Emoji) []string {
	names := make([]string, 0, len(emojis))
	for _, e := range emojis {
		names = append(names, e.Name)
	}
	return names
}

type user struct {
	ID string `json:"id"`
}

type emojiList struct {
	Items []Emoji `json:"items"`
}

type createEmojiRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
