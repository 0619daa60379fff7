package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectDistrictClearsDownstream(t *testing.T) {
	var c Cascade
	c.SelectDistrict("Porto")
	c.SelectMunicipality("Matosinhos")
	c.SelectParish("Matosinhos e Leça da Palmeira")

	c.SelectDistrict("Lisboa")

	assert.Equal(t, "Lisboa", c.District)
	assert.Empty(t, c.Municipality)
	assert.Empty(t, c.Parish)
}

func TestSelectMunicipalityClearsParish(t *testing.T) {
	var c Cascade
	c.SelectDistrict("Lisboa")
	c.SelectMunicipality("Lisboa")
	c.SelectParish("Alvalade")

	c.SelectMunicipality("Cascais")

	assert.Equal(t, "Cascais", c.Municipality)
	assert.Empty(t, c.Parish)
}

func TestOptionsFollowSelection(t *testing.T) {
	var c Cascade
	assert.Empty(t, c.MunicipalityOptions())

	c.SelectDistrict("Porto")
	assert.Contains(t, c.MunicipalityOptions(), "Vila Nova de Gaia")
	assert.NotContains(t, c.MunicipalityOptions(), "Cascais")
	assert.Empty(t, c.ParishOptions())

	c.SelectMunicipality("Porto")
	assert.Contains(t, c.ParishOptions(), "Bonfim")
}

func TestOptionsAreCopies(t *testing.T) {
	opts := MunicipalitiesFor("Braga")
	opts[0] = "mutated"
	assert.NotContains(t, MunicipalitiesFor("Braga"), "mutated")
}

func TestDistrictsSorted(t *testing.T) {
	districts := Districts()
	assert.NotEmpty(t, districts)
	for i := 1; i < len(districts); i++ {
		assert.LessOrEqual(t, districts[i-1], districts[i])
	}
}
