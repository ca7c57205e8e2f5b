package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-pop/models"
)

var feedNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

func feedFixture() []models.Event {
	return []models.Event{
		{
			ID:            "evt3",
			Title:         "Workshop on Canva",
			Description:   "Learn graphic design basics",
			Category:      "Workshop",
			EventDateTime: feedNow.Add(72 * time.Hour),
		},
		{
			ID:            "evt1",
			Title:         "EXTEMPORE",
			Description:   "Spontaneous speaking competition",
			Category:      "Competition",
			EventDateTime: feedNow.Add(24 * time.Hour),
		},
		{
			ID:            "evt2",
			Title:         "Clean Drive",
			Description:   "Plastic-free campus initiative",
			Category:      "Social",
			EventDateTime: feedNow.Add(48 * time.Hour),
		},
	}
}

func TestFilterEvents_EmptyQueryAllCategoryReturnsEverythingOrdered(t *testing.T) {
	events := feedFixture()

	result := FilterEvents(events, feedNow, "", CategoryAll)

	require.Len(t, result, 3)
	assert.Equal(t, "evt1", result[0].ID)
	assert.Equal(t, "evt2", result[1].ID)
	assert.Equal(t, "evt3", result[2].ID)
}

func TestFilterEvents_TitleSubstringCaseInsensitive(t *testing.T) {
	events := feedFixture()

	result := FilterEvents(events, feedNow, "clean", CategoryAll)
	require.Len(t, result, 1)
	assert.Equal(t, "Clean Drive", result[0].Title)

	result = FilterEvents(events, feedNow, "EXTEM", CategoryAll)
	require.Len(t, result, 1)
	assert.Equal(t, "EXTEMPORE", result[0].Title)
}

func TestFilterEvents_DescriptionMatches(t *testing.T) {
	events := feedFixture()

	result := FilterEvents(events, feedNow, "graphic design", CategoryAll)
	require.Len(t, result, 1)
	assert.Equal(t, "evt3", result[0].ID)
}

func TestFilterEvents_CategoryAndQueryCombineWithAnd(t *testing.T) {
	events := feedFixture()

	// Query matches evt2 but category does not
	result := FilterEvents(events, feedNow, "clean", "Workshop")
	assert.Empty(t, result)

	result = FilterEvents(events, feedNow, "", "Workshop")
	require.Len(t, result, 1)
	assert.Equal(t, "evt3", result[0].ID)
}

func TestFilterEvents_NoMatchReturnsEmpty(t *testing.T) {
	events := feedFixture()

	result := FilterEvents(events, feedNow, "nonexistent", CategoryAll)
	assert.Empty(t, result)
}

func TestFilterEvents_PastEventsExcluded(t *testing.T) {
	events := append(feedFixture(), models.Event{
		ID:            "evt0",
		Title:         "Yesterday",
		EventDateTime: feedNow.Add(-24 * time.Hour),
	})

	result := FilterEvents(events, feedNow, "", CategoryAll)
	require.Len(t, result, 3)
	for _, event := range result {
		assert.NotEqual(t, "evt0", event.ID)
	}
}

func TestFilterEvents_TiesBrokenByID(t *testing.T) {
	at := feedNow.Add(24 * time.Hour)
	events := []models.Event{
		{ID: "bbb", Title: "B", EventDateTime: at},
		{ID: "aaa", Title: "A", EventDateTime: at},
	}

	result := FilterEvents(events, feedNow, "", CategoryAll)
	require.Len(t, result, 2)
	assert.Equal(t, "aaa", result[0].ID)
	assert.Equal(t, "bbb", result[1].ID)
}

func TestFilterEvents_InputNotMutated(t *testing.T) {
	events := feedFixture()
	originalFirst := events[0].ID

	FilterEvents(events, feedNow, "", CategoryAll)

	assert.Equal(t, originalFirst, events[0].ID)
}
