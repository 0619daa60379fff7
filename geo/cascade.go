// ABOUTME: Cascading district -> municipality -> parish selection state
// ABOUTME: Selecting upstream always clears downstream selections
package geo

// Cascade holds one location selection. Changing the district clears
// the municipality and parish; changing the municipality clears the
// parish. Invalidated values are never retained.
type Cascade struct {
	District     string
	Municipality string
	Parish       string
}

// SelectDistrict sets the district and drops the downstream fields.
// Re-selecting the current district is still a change and clears them.
func (c *Cascade) SelectDistrict(district string) {
	c.District = district
	c.Municipality = ""
	c.Parish = ""
}

// SelectMunicipality sets the municipality and drops the parish.
func (c *Cascade) SelectMunicipality(municipality string) {
	c.Municipality = municipality
	c.Parish = ""
}

// SelectParish sets the parish.
func (c *Cascade) SelectParish(parish string) {
	c.Parish = parish
}

// MunicipalityOptions recomputes the valid municipalities for the
// current district.
func (c *Cascade) MunicipalityOptions() []string {
	return MunicipalitiesFor(c.District)
}

// ParishOptions recomputes the valid parishes for the current
// municipality.
func (c *Cascade) ParishOptions() []string {
	return ParishesFor(c.Municipality)
}
