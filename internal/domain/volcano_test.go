package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPopulationBand(t *testing.T) {
	t.Parallel()

	for _, band := range PopulationBands {
		assert.True(t, ValidPopulationBand(band), band)
	}

	assert.False(t, ValidPopulationBand(""))
	assert.False(t, ValidPopulationBand("7km"))
	assert.False(t, ValidPopulationBand("5KM"))
	assert.False(t, ValidPopulationBand("5km "))
}
