package openweather

import "fmt"

// Icon resolutions.
const (
	DetailIcon = "@4x"
	TileIcon   = "@2x"
)

// IconURL builds condition icon URL for the given icon identifier and resolution.
func IconURL(baseURL, icon, resolution string) string {
	if icon == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s%s.png", baseURL, icon, resolution)
}
