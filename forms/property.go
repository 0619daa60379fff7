// ABOUTME: Property form draft, validation and payload shaping
// ABOUTME: Tracks kept gallery images separately from newly attached files
package forms

import (
	"fmt"
	"strconv"

	"github.com/imocrm/imocrm/geo"
	"github.com/imocrm/imocrm/models"
)

// PropertyDraft holds the editable fields of one property as typed by
// the user. Numeric fields stay strings until submission so partial
// input never breaks the draft.
type PropertyDraft struct {
	Reference         string
	Title             string
	BusinessType      string
	PropertyType      string
	Typology          string
	Price             string
	UsableArea        string
	LandArea          string
	Location          geo.Cascade
	Street            string
	Condition         string
	EnergyCertificate string
	Latitude          string
	Longitude         string
	Bedrooms          string
	Bathrooms         string
	ParkingSpaces     string
	Published         bool
	Featured          bool
	Status            string

	// KeptImages are the URLs from the original record the user did
	// not remove; NewFiles are local paths pending upload. Survivors
	// are never re-uploaded.
	KeptImages []string
	NewFiles   []string
}

// NewPropertyDraft seeds an empty create-mode draft.
func NewPropertyDraft() *PropertyDraft {
	return &PropertyDraft{Status: models.PropertyAvailable}
}

// PropertyDraftFrom seeds an edit-mode draft from a fetched record.
func PropertyDraftFrom(p *models.Property) *PropertyDraft {
	d := &PropertyDraft{
		Reference:         p.Reference,
		Title:             p.Title,
		BusinessType:      p.BusinessType,
		PropertyType:      p.PropertyType,
		Typology:          p.Typology,
		Street:            p.Street,
		Condition:         p.Condition,
		EnergyCertificate: p.EnergyCertificate,
		Bedrooms:          strconv.Itoa(p.Bedrooms),
		Bathrooms:         strconv.Itoa(p.Bathrooms),
		ParkingSpaces:     strconv.Itoa(p.ParkingSpaces),
		Published:         p.Published,
		Featured:          p.Featured,
		Status:            p.Status,
		KeptImages:        append([]string(nil), p.Images...),
	}
	d.Location.District = p.District
	d.Location.Municipality = p.Municipality
	d.Location.Parish = p.Parish

	if p.Price != nil {
		d.Price = formatDecimal(*p.Price)
	}
	if p.UsableArea != nil {
		d.UsableArea = formatDecimal(*p.UsableArea)
	}
	if p.LandArea != nil {
		d.LandArea = formatDecimal(*p.LandArea)
	}
	if p.Latitude != nil {
		d.Latitude = formatDecimal(*p.Latitude)
	}
	if p.Longitude != nil {
		d.Longitude = formatDecimal(*p.Longitude)
	}
	return d
}

// RemoveImage drops a kept image URL so it is excluded from the final
// gallery without touching the other survivors.
func (d *PropertyDraft) RemoveImage(url string) {
	kept := d.KeptImages[:0]
	for _, img := range d.KeptImages {
		if img != url {
			kept = append(kept, img)
		}
	}
	d.KeptImages = kept
}

// AttachFile queues a local file for upload on save.
func (d *PropertyDraft) AttachFile(path string) {
	d.NewFiles = append(d.NewFiles, path)
}

// Validate runs the ordered validators and returns every failure.
func (d *PropertyDraft) Validate() Errors {
	var errs Errors
	errs.Require(d.Reference, "Referência é obrigatória")
	errs.Require(d.Title, "Título é obrigatório")
	errs.Require(d.BusinessType, "Tipo de negócio é obrigatório")
	errs.Require(d.PropertyType, "Tipo de imóvel é obrigatório")
	errs.Require(d.Location.District, "Distrito é obrigatório")
	errs.Require(d.Location.Municipality, "Concelho é obrigatório")
	errs.RequireDecimal(d.Price, "Preço é obrigatório")
	if len(d.KeptImages) == 0 && len(d.NewFiles) == 0 {
		errs.Add("Pelo menos uma imagem é obrigatória")
	}
	return errs
}

// PropertyPayload is the exact request body shape for property create
// and update calls. Images always carries the final kept-image state.
type PropertyPayload struct {
	Reference         string   `json:"reference"`
	Title             string   `json:"title"`
	BusinessType      string   `json:"business_type"`
	PropertyType      string   `json:"property_type"`
	Typology          string   `json:"typology,omitempty"`
	Price             float64  `json:"price"`
	UsableArea        *float64 `json:"usable_area,omitempty"`
	LandArea          *float64 `json:"land_area,omitempty"`
	District          string   `json:"district"`
	Municipality      string   `json:"municipality"`
	Parish            string   `json:"parish,omitempty"`
	Street            string   `json:"street,omitempty"`
	Condition         string   `json:"condition,omitempty"`
	EnergyCertificate string   `json:"energy_certificate,omitempty"`
	Published         bool     `json:"published"`
	Featured          bool     `json:"featured"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Bedrooms          int      `json:"bedrooms"`
	Bathrooms         int      `json:"bathrooms"`
	ParkingSpaces     int      `json:"parking_spaces"`
	Images            []string `json:"images"`
	Status            string   `json:"status"`
}

// PropertySubmission is the validated output handed to the persistence
// call: the payload plus any files still pending upload.
type PropertySubmission struct {
	Payload PropertyPayload
	Files   []string
}

// Submission validates the draft and, when clean, assembles the
// backend-shaped payload. Validation always completes before any
// network work starts.
func (d *PropertyDraft) Submission() (*PropertySubmission, Errors) {
	if errs := d.Validate(); !errs.OK() {
		return nil, errs
	}

	price := ParseDecimal(d.Price)
	if price == nil {
		// Unreachable after Validate, kept as a guard.
		return nil, Errors{"Preço é obrigatório"}
	}

	payload := PropertyPayload{
		Reference:         d.Reference,
		Title:             d.Title,
		BusinessType:      d.BusinessType,
		PropertyType:      d.PropertyType,
		Typology:          d.Typology,
		Price:             *price,
		UsableArea:        ParseDecimal(d.UsableArea),
		LandArea:          ParseDecimal(d.LandArea),
		District:          d.Location.District,
		Municipality:      d.Location.Municipality,
		Parish:            d.Location.Parish,
		Street:            d.Street,
		Condition:         d.Condition,
		EnergyCertificate: d.EnergyCertificate,
		Published:         d.Published,
		Featured:          d.Featured,
		Latitude:          ParseDecimal(d.Latitude),
		Longitude:         ParseDecimal(d.Longitude),
		Bedrooms:          ParseCount(d.Bedrooms),
		Bathrooms:         ParseCount(d.Bathrooms),
		ParkingSpaces:     ParseCount(d.ParkingSpaces),
		Images:            append([]string(nil), d.KeptImages...),
		Status:            d.Status,
	}
	if payload.Status == "" {
		payload.Status = models.PropertyAvailable
	}

	return &PropertySubmission{
		Payload: payload,
		Files:   append([]string(nil), d.NewFiles...),
	}, nil
}

func formatDecimal(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%g", v)
}
