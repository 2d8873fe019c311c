package utils

// LevelCalloutType maps a word difficulty level to the Obsidian callout used
// to frame its note. Unknown levels fall back to "note".
func LevelCalloutType(level string) string {
	switch level {
	case "easy":
		return "tip"
	case "medium":
		return "note"
	case "hard":
		return "warning"
	}
	return "note"
}
