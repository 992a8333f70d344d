package content

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pds/internal/dbmysql"
)

func itemIDs(items []ListItem) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestWithEmptyEntry(t *testing.T) {
	empty := withEmptyEntry(nil)
	require.Len(t, empty, 1)
	assert.Equal(t, uuid.Nil, empty[0].ID)

	a, b := uuid.New(), uuid.New()
	list := withEmptyEntry([]ListItem{{ID: a}, {ID: b}})
	assert.Equal(t, []uuid.UUID{uuid.Nil, a, b}, itemIDs(list))
}

func TestMoveToFront(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	base := withEmptyEntry([]ListItem{{ID: a}, {ID: b}, {ID: c}})

	tests := []struct {
		name     string
		selected uuid.UUID
		want     []uuid.UUID
	}{
		{"middle item", b, []uuid.UUID{b, uuid.Nil, a, c}},
		{"last item", c, []uuid.UUID{c, uuid.Nil, a, b}},
		{"first real item", a, []uuid.UUID{a, uuid.Nil, b, c}},
		{"unknown id keeps order", uuid.New(), []uuid.UUID{uuid.Nil, a, b, c}},
		{"empty id keeps order", uuid.Nil, []uuid.UUID{uuid.Nil, a, b, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moveToFront(base, tt.selected)
			assert.Equal(t, tt.want, itemIDs(got))

			empties := 0
			for _, id := range itemIDs(got) {
				if id == uuid.Nil {
					empties++
				}
			}
			assert.Equal(t, 1, empties)
		})
	}

	assert.Equal(t, []uuid.UUID{uuid.Nil, a, b, c}, itemIDs(base), "input must not be modified")
}

func TestToListItems(t *testing.T) {
	release := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	contents := []dbmysql.Content{
		{ID: uuid.New(), Title: "First", ReleaseDate: release},
		{ID: uuid.New(), Title: "Second", ReleaseDate: release.AddDate(0, 0, 1)},
	}

	items := toListItems(contents)
	require.Len(t, items, 2)
	assert.Equal(t, contents[0].ID, items[0].ID)
	assert.Equal(t, "Second", items[1].Title)
	require.NotNil(t, items[1].ReleaseDate)
	assert.True(t, items[1].ReleaseDate.Equal(release.AddDate(0, 0, 1)))
}
