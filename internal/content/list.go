package content

import (
	"github.com/google/uuid"

	"pds/internal/dbmysql"
)

func toListItems(contents []dbmysql.Content) []ListItem {
	items := make([]ListItem, 0, len(contents))
	for i := range contents {
		releaseDate := contents[i].ReleaseDate
		items = append(items, ListItem{
			ID:          contents[i].ID,
			Title:       contents[i].Title,
			ReleaseDate: &releaseDate,
		})
	}
	return items
}

// withEmptyEntry prepends the "nothing selected" item.
func withEmptyEntry(base []ListItem) []ListItem {
	out := make([]ListItem, 0, len(base)+1)
	out = append(out, ListItem{ID: uuid.Nil})
	return append(out, base...)
}

// moveToFront returns a copy of items with the item identified by id at index 0.
// The input is returned unchanged when id is absent or already first.
// The empty entry is never moved.
func moveToFront(items []ListItem, id uuid.UUID) []ListItem {
	if id == uuid.Nil {
		return items
	}
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return items
	}

	out := make([]ListItem, 0, len(items))
	out = append(out, items[idx])
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
