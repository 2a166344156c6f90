package discord

import (
	"fmt"
	"strings"
)

// CDNBase is the Discord CDN root.
const CDNBase = "https://cdn.discordapp.com"

// Asset is a CDN image reference: a base URL plus the hash code Discord
// hands out for it. Animated assets carry an "a_" hash prefix and are
// served as GIFs.
type Asset struct {
	BaseURL string
	Code    string
}

// Animated reports whether the asset hash marks an animated image.
func (a Asset) Animated() bool {
	return strings.HasPrefix(a.Code, "a_")
}

// URL returns the CDN URL at the given size. Size must be a power of two
// between 16 and 4096; Discord rejects anything else.
func (a Asset) URL(size int) string {
	ext := "png"
	if a.Animated() {
		ext = "gif"
	}
	return fmt.Sprintf("%s/%s.%s?size=%d", a.BaseURL, a.Code, ext, size)
}
