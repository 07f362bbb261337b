package decode

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ReadTitle reads the ID3v2 title tag, falling back to the filename without
// its extension. Non-MP3 formats use the fallback directly.
func ReadTitle(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			title := strings.TrimSpace(tag.Title())
			artist := strings.TrimSpace(tag.Artist())
			tag.Close()
			if title != "" && artist != "" {
				return artist + " - " + title
			}
			if title != "" {
				return title
			}
		}
	}

	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
