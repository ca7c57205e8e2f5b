package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-pop/models"
)

func TestNextStatus_ToggleOn(t *testing.T) {
	assert.Equal(t, models.StatusGoing, NextStatus("", models.StatusGoing))
	assert.Equal(t, models.StatusInterested, NextStatus("", models.StatusInterested))
}

func TestNextStatus_ToggleOffClearsRow(t *testing.T) {
	assert.Equal(t, "", NextStatus(models.StatusGoing, models.StatusGoing))
	assert.Equal(t, "", NextStatus(models.StatusInterested, models.StatusInterested))
}

func TestNextStatus_SwitchOverwritesInPlace(t *testing.T) {
	// Selecting "going" while "interested" is set replaces it: the two
	// statuses are mutually exclusive.
	assert.Equal(t, models.StatusGoing, NextStatus(models.StatusInterested, models.StatusGoing))
	assert.Equal(t, models.StatusInterested, NextStatus(models.StatusGoing, models.StatusInterested))
}

func TestNextStatus_DoubleToggleReturnsToStart(t *testing.T) {
	for _, start := range []string{"", models.StatusInterested, models.StatusGoing} {
		for _, requested := range []string{models.StatusInterested, models.StatusGoing} {
			once := NextStatus(start, requested)
			twice := NextStatus(once, requested)

			if start == requested {
				// Toggling off then on again lands on the requested status.
				assert.Equal(t, requested, twice)
			} else if once == requested {
				assert.Equal(t, "", twice, "second identical toggle must clear")
			}
		}
	}
}
