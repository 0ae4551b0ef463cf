// Package visual assigns closed-vocabulary tags to catalog base names so a
// query like "round" or "animal" can reach entries that never spell the
// word. The tag dictionary and rule table are generated-reviewed artifacts;
// the index is built once at startup.
package visual

// tagDictionary is the closed tag vocabulary, index addressed. Order is
// part of the contract: indices are stored in the per-base tag sets.
var tagDictionary = []string{
	"arrow", "direction", "up", "down", "left", "right", "navigation",
	"chevron", "sync", "refresh", "undo", "redo", "sort", "swap", "trend",
	"shape", "circle", "square", "triangle", "diamond", "star", "heart",
	"round", "geometry",
	"person", "people", "user", "team", "community", "face", "emotion",
	"happy", "sad", "angry", "hand",
	"time", "clock", "alarm", "calendar", "timer", "history", "schedule",
	"wait",
	"communication", "mail", "chat", "message", "comment", "call", "phone",
	"send", "share", "announcement", "notification",
	"device", "computer", "laptop", "desktop", "tablet", "keyboard",
	"mouse", "printer", "camera", "screen", "tv", "battery", "power",
	"plug", "bluetooth", "wifi", "usb", "server", "storage",
	"security", "lock", "key", "shield", "privacy", "fingerprint",
	"password", "visibility",
	"commerce", "money", "payment", "shopping", "cart", "wallet", "bank",
	"gift", "receipt", "tag",
	"nature", "plant", "tree", "leaf", "animal", "weather", "sun", "moon",
	"rain", "snow", "cloud", "mountain", "earth", "world",
	"food", "drink", "coffee", "beer", "wine",
	"tech", "code", "development", "bug", "database", "robot", "ai",
	"rocket", "tool", "settings", "terminal", "science",
	"media", "play", "pause", "stop", "music", "audio", "video", "image",
	"photo", "record", "volume", "microphone",
	"container", "folder", "document", "file", "archive", "box",
	"clipboard", "book", "library", "briefcase", "bag",
	"add", "remove", "delete", "edit", "search", "filter", "save",
	"download", "upload", "copy", "paste", "attach", "link", "pin", "flag",
	"bookmark", "zoom", "check", "dismiss", "warning", "error", "info",
	"question", "help", "home", "location", "map", "travel", "vehicle",
	"building", "award", "celebration", "idea", "light", "fire", "sparkle",
	"text", "table", "grid", "list", "chart", "data", "target",
	"disabled", "multiple",
}

var tagIndexByName = func() map[string]int {
	m := make(map[string]int, len(tagDictionary))
	for i, t := range tagDictionary {
		m[t] = i
	}
	return m
}()

// Dictionary returns the ordered tag vocabulary.
func Dictionary() []string { return tagDictionary }

// TagIndex resolves a tag name to its dictionary index.
func TagIndex(tag string) (int, bool) {
	i, ok := tagIndexByName[tag]
	return i, ok
}

// TagName returns the tag at dictionary index i, or "" when out of range.
func TagName(i int) string {
	if i < 0 || i >= len(tagDictionary) {
		return ""
	}
	return tagDictionary[i]
}
