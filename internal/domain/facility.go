package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedImage is returned for image files with a disallowed extension
var ErrUnsupportedImage = errors.New("domain: unsupported image extension")

// Facility represents a bookable sports facility ("cancha")
type Facility struct {
	ID          int64
	Name        string
	Price       string
	Description string
	ImageRef    *string
	Address     string
	OwnerID     *int64 // NULL = not yet assigned, hidden from the catalog
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Filled by joins, not persisted
	OwnerName  *string
	IsFavorite bool
}

// IsListed returns true if the facility is visible in the public catalog
func (f *Facility) IsListed() bool {
	return f.OwnerID != nil
}

// IsOwnedBy returns true if ownerID owns the facility
func (f *Facility) IsOwnedBy(ownerID int64) bool {
	return f.OwnerID != nil && *f.OwnerID == ownerID
}

// ImageRef builds the deterministic storage reference of a facility image:
// canchas_uploads/<name with spaces replaced by _>_<ownerID>.<ext>.
// The same name uploaded by the same owner yields the same reference.
func ImageRef(facilityName string, ownerID int64, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !isAllowedImageExtension(ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, filename)
	}

	base := strings.ReplaceAll(strings.TrimSpace(facilityName), " ", "_")
	return fmt.Sprintf("%s/%s_%d.%s", FacilityImageDir, base, ownerID, ext), nil
}

func isAllowedImageExtension(ext string) bool {
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
