package catalog

import "github.com/NaouresKraiem/kachabity-sub002/internal/domain"

// ResolveImage picks the representative image URL for a product:
// the first row flagged is_main, else the row with the smallest position,
// else the legacy single-image column, else the placeholder.
func ResolveImage(images []domain.ProductImage, legacyURL, placeholder string) string {
	for _, img := range images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(images) > 0 {
		best := images[0]
		for _, img := range images[1:] {
			if img.Position < best.Position {
				best = img
			}
		}
		return best.ImageURL
	}
	if legacyURL != "" {
		return legacyURL
	}
	return placeholder
}
