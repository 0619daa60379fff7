// ABOUTME: Property CLI commands
// ABOUTME: Create, list, update, delete plus image and video uploads
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
)

// AddPropertyCommand creates a new property listing.
func AddPropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-property", flag.ExitOnError)
	reference := fs.String("reference", "", "Internal reference (required)")
	title := fs.String("title", "", "Listing title (required)")
	businessType := fs.String("business-type", "", "Business type, e.g. sale or rent (required)")
	propertyType := fs.String("property-type", "", "Property type, e.g. apartment (required)")
	typology := fs.String("typology", "", "Typology, e.g. T2")
	price := fs.String("price", "", "Asking price (required, comma decimals accepted)")
	usableArea := fs.String("usable-area", "", "Usable area in m2")
	landArea := fs.String("land-area", "", "Land area in m2")
	district := fs.String("district", "", "District (required)")
	municipality := fs.String("municipality", "", "Municipality (required)")
	parish := fs.String("parish", "", "Parish")
	street := fs.String("street", "", "Street address")
	condition := fs.String("condition", "", "Condition, e.g. new or used")
	energy := fs.String("energy", "", "Energy certificate class")
	bedrooms := fs.String("bedrooms", "", "Bedroom count")
	bathrooms := fs.String("bathrooms", "", "Bathroom count")
	parking := fs.String("parking", "", "Parking space count")
	status := fs.String("status", "", "Status (default: AVAILABLE)")
	published := fs.Bool("published", false, "Publish on the public site")
	featured := fs.Bool("featured", false, "Mark as featured")
	images := fs.String("images", "", "Comma-separated local image files to upload")
	_ = fs.Parse(args)

	draft := forms.NewPropertyDraft()
	draft.Reference = *reference
	draft.Title = *title
	draft.BusinessType = *businessType
	draft.PropertyType = *propertyType
	draft.Typology = *typology
	draft.Price = *price
	draft.UsableArea = *usableArea
	draft.LandArea = *landArea
	draft.Location.SelectDistrict(*district)
	draft.Location.SelectMunicipality(*municipality)
	draft.Location.SelectParish(*parish)
	draft.Street = *street
	draft.Condition = *condition
	draft.EnergyCertificate = *energy
	draft.Bedrooms = *bedrooms
	draft.Bathrooms = *bathrooms
	draft.ParkingSpaces = *parking
	if *status != "" {
		draft.Status = *status
	}
	draft.Published = *published
	draft.Featured = *featured
	for _, path := range splitList(*images) {
		draft.AttachFile(path)
	}

	sub, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := client.CreateProperty(ctx, sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	fmt.Printf("✓ Property created: %s (ID: %d)\n", created.Reference, created.ID)

	if len(sub.Files) > 0 {
		if err := uploadImages(client, created.ID, sub.Files); err != nil {
			return fmt.Errorf("property saved but upload failed: %w", err)
		}
		fmt.Printf("  Uploaded %d image(s)\n", len(sub.Files))
	}
	return nil
}

// ListPropertiesCommand lists properties with the shared search and
// status filters.
func ListPropertiesCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-properties", flag.ExitOnError)
	query := fs.String("query", "", "Search by reference, title or address")
	status := fs.String("status", "", "Filter by status")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	properties, err := client.ListProperties(ctx, api.ListOptions{
		Search: *query,
		Status: *status,
		Limit:  *limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	if len(properties) == 0 {
		fmt.Println("No properties found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REFERENCE\tTITLE\tLOCATION\tPRICE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "---------\t-----\t--------\t-----\t------\t--")

	for _, p := range properties {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("%.0f", *p.Price)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			p.Reference, p.Title, orDash(p.DisplayAddress()), price, p.Status, p.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d propert(ies)\n", len(properties))
	return nil
}

// UpdatePropertyCommand updates a property. Flags override individual
// fields; everything untouched keeps its stored value.
func UpdatePropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-property", flag.ExitOnError)
	title := fs.String("title", "", "Listing title")
	price := fs.String("price", "", "Asking price")
	status := fs.String("status", "", "Status")
	district := fs.String("district", "", "District (clears municipality and parish)")
	municipality := fs.String("municipality", "", "Municipality (clears parish)")
	parish := fs.String("parish", "", "Parish")
	street := fs.String("street", "", "Street address")
	published := fs.String("published", "", "true or false")
	featured := fs.String("featured", "", "true or false")
	removeImage := fs.String("remove-image", "", "Image URL to drop from the gallery")
	images := fs.String("images", "", "Comma-separated local image files to upload")
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "property")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	existing, err := client.GetProperty(ctx, id)
	if err != nil {
		return fmt.Errorf("property not found: %w", err)
	}

	draft := forms.PropertyDraftFrom(existing)
	if *title != "" {
		draft.Title = *title
	}
	if *price != "" {
		draft.Price = *price
	}
	if *status != "" {
		draft.Status = *status
	}
	if *district != "" {
		draft.Location.SelectDistrict(*district)
	}
	if *municipality != "" {
		draft.Location.SelectMunicipality(*municipality)
	}
	if *parish != "" {
		draft.Location.SelectParish(*parish)
	}
	if *street != "" {
		draft.Street = *street
	}
	if *published != "" {
		draft.Published = *published == "true"
	}
	if *featured != "" {
		draft.Featured = *featured == "true"
	}
	if *removeImage != "" {
		draft.RemoveImage(*removeImage)
	}
	for _, path := range splitList(*images) {
		draft.AttachFile(path)
	}

	sub, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	payload := sub.Payload
	if len(sub.Files) > 0 {
		token, err := client.UploadToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get upload token: %w", err)
		}
		result, err := client.UploadImages(ctx, id, token, sub.Files)
		if err != nil {
			return fmt.Errorf("failed to upload images: %w", err)
		}
		payload.Images = append(payload.Images, result.URLs...)
	}

	updated, err := client.UpdateProperty(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	fmt.Printf("✓ Property updated: %s (ID: %d)\n", updated.Reference, updated.ID)
	return nil
}

// DeletePropertyCommand deletes a property.
func DeletePropertyCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-property", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "property")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := client.DeleteProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	fmt.Printf("✓ Property deleted: %d\n", id)
	return nil
}

// UploadImagesCommand uploads local images to an existing property.
func UploadImagesCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("upload-images", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "property")
	if err != nil {
		return err
	}
	paths := fs.Args()[1:]
	if len(paths) == 0 {
		return fmt.Errorf("at least one image file is required")
	}

	if err := uploadImages(client, id, paths); err != nil {
		return err
	}
	fmt.Printf("✓ Uploaded %d image(s) to property %d\n", len(paths), id)
	return nil
}

// UploadVideoCommand uploads a video to an existing property.
func UploadVideoCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("upload-video", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "property")
	if err != nil {
		return err
	}
	if len(fs.Args()) < 2 {
		return fmt.Errorf("video file is required")
	}
	path := fs.Args()[1]

	ctx, cancel := commandContext()
	defer cancel()

	token, err := client.UploadToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get upload token: %w", err)
	}

	result, err := client.UploadVideo(ctx, id, token, path)
	if err != nil {
		return fmt.Errorf("failed to upload video: %w", err)
	}

	fmt.Printf("✓ Video uploaded: %s\n", result.VideoURL)
	if result.OriginalSizeMB != nil && result.FinalSizeMB != nil {
		fmt.Printf("  Compressed %.1f MB to %.1f MB\n", *result.OriginalSizeMB, *result.FinalSizeMB)
	}
	return nil
}

func uploadImages(client *api.Client, propertyID int64, paths []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	token, err := client.UploadToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get upload token: %w", err)
	}
	if _, err := client.UploadImages(ctx, propertyID, token, paths); err != nil {
		return fmt.Errorf("failed to upload images: %w", err)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
