package domain

type Tag struct {
	ID    string
	Name  string
	Color string
}

// UnknownTagName and UnknownTagColor stand in for a tag id that no longer
// resolves to a stored tag.
const (
	UnknownTagName  = "Unknown"
	UnknownTagColor = "#888888"
)

// TagPalette is the fixed set of colors offered for new tags.
var TagPalette = []string{
	"#4A90D9", // blue
	"#D94A4A", // red
	"#50B86C", // green
	"#E8A838", // amber
	"#9B6DD7", // purple
	"#D97B4A", // orange
	"#4ABFBF", // teal
	"#D94A8A", // pink
	"#8B8B8B", // gray
	"#6B8E5A", // olive
}

// DefaultTags returns the tags seeded into a fresh database.
func DefaultTags() []Tag {
	return []Tag{
		{ID: "work", Name: "Work", Color: TagPalette[0]},
		{ID: "sleep", Name: "Sleep", Color: TagPalette[4]},
		{ID: "exercise", Name: "Exercise", Color: TagPalette[2]},
		{ID: "break", Name: "Break", Color: TagPalette[3]},
		{ID: "personal", Name: "Personal", Color: TagPalette[5]},
	}
}

// TagIndex maps tag ids to tags for lookups during rendering.
func TagIndex(tags []Tag) map[string]Tag {
	idx := make(map[string]Tag, len(tags))
	for _, t := range tags {
		idx[t.ID] = t
	}
	return idx
}
