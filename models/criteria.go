// ABOUTME: Buyer lead search criteria and the tri-state amenity flag
// ABOUTME: TriState cycles indifferent -> required -> indifferent, never excluded
package models

import (
	"bytes"
	"encoding/json"
)

// TriState is an amenity preference. Indifferent serializes as JSON
// null, Required as true and Excluded as false. Excluded means
// "explicitly not wanted"; stored leads may carry it, but Toggle never
// produces it because no current surface lets the user express it.
type TriState int

const (
	Indifferent TriState = iota
	Required
	Excluded
)

// Toggle advances the flag: indifferent becomes required, anything
// else falls back to indifferent.
func (t TriState) Toggle() TriState {
	if t == Indifferent {
		return Required
	}
	return Indifferent
}

func (t TriState) String() string {
	switch t {
	case Required:
		return "required"
	case Excluded:
		return "excluded"
	default:
		return "indifferent"
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Required:
		return []byte("true"), nil
	case Excluded:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*t = Required
	case bytes.Equal(data, []byte("false")):
		*t = Excluded
	default:
		*t = Indifferent
	}
	return nil
}

// BuyerCriteria carries the multi-select search preferences of a buyer
// lead. Every slice is independent; the amenity flags are tri-state.
type BuyerCriteria struct {
	PropertyTypes  []string `json:"property_types,omitempty"`
	Typologies     []string `json:"typologies,omitempty"`
	Districts      []string `json:"districts,omitempty"`
	Municipalities []string `json:"municipalities,omitempty"`
	Parishes       []string `json:"parishes,omitempty"`

	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`

	Garage   TriState `json:"garage"`
	Elevator TriState `json:"elevator"`
	Balcony  TriState `json:"balcony"`
	Garden   TriState `json:"garden"`
	Pool     TriState `json:"pool"`
}

var _ json.Marshaler = TriState(0)
