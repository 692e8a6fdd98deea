package domain

import (
	"regexp"
	"strings"
)

const (
	amazonImageHost = "m.media-amazon.com"
	posterSize      = "600"
)

var (
	amazonBase = regexp.MustCompile(`^(.+@\._V1_)`)
	imageExt   = regexp.MustCompile(`(?i)_\.(jpg|jpeg|png|webp)$`)
)

// UpgradePosterURL rewrites IMDb CDN thumbnails to a 600px rendition at full
// quality. The sizing axis (UX width, UY height) follows the hint in the
// original URL. URLs of any other shape are returned unchanged.
func UpgradePosterURL(url string) (out string) {
	if !strings.Contains(url, amazonImageHost) {
		return url
	}
	defer func() {
		if recover() != nil {
			out = url
		}
	}()

	m := amazonBase.FindStringSubmatch(url)
	if m == nil {
		return url
	}

	dimension := "UY" + posterSize
	if strings.Contains(url, "UX") {
		dimension = "UX" + posterSize
	}

	ext := "jpg"
	if e := imageExt.FindStringSubmatch(url); e != nil {
		ext = e[1]
	}

	return m[1] + "QL100_" + dimension + "_." + ext
}
