package api

import (
	"strings"
)

const defaultBaseImageURL = "https://i.redd.it"

// Mirror hosts are checked in order, only the first match is rewritten.
var mirrorHosts = []struct {
	contains, prefix string
}{
	{contains: "external-preview.redd.it", prefix: "https://external-preview.redd.it"},
	{contains: "external-i.redd.it", prefix: "https://external-i.redd.it"},
	{contains: "preview.redd.it", prefix: "https://preview.redd.it"},
}

var imageExtensions = []string{".jpg", ".png", ".jpeg", ".webp"}

// ResolveImage returns the best image url to display for the post, or false if there is none.
//
// It tries, in order:
//   - The first preview image, rewritten to the i.redd.it host;
//   - The post url, if it points to an image;
//   - The thumbnail, if it is an url.
//
// Anything still pointing to an "external-" host is skipped.
func (p *Post) ResolveImage() (string, bool) {
	if u, ok := p.previewImage(); ok {
		return u, true
	}

	if hasImageExtension(p.URL) && !isExternal(p.URL) {
		return p.URL, true
	}

	if strings.HasPrefix(p.Thumbnail, "http") && !isExternal(p.Thumbnail) {
		return p.Thumbnail, true
	}

	return "", false
}

func (p *Post) previewImage() (string, bool) {
	if p.Preview == nil || len(p.Preview.Images) == 0 {
		return "", false
	}

	u := strings.ReplaceAll(p.Preview.Images[0].Source.URL, "&amp;", "&")
	for _, m := range mirrorHosts {
		if strings.Contains(u, m.contains) {
			u = strings.Replace(u, m.prefix, defaultBaseImageURL, 1)
			break
		}
	}

	if isExternal(u) {
		return "", false
	}
	return u, true
}

func hasImageExtension(u string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(u, ext) {
			return true
		}
	}
	return false
}

func isExternal(u string) bool {
	return strings.Contains(u, "external-")
}
