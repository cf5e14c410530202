package assets

import (
	"hash/fnv"
	"image/color"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"
)

// Levels refer to art by opaque handles. Without sprite sheets the renderer
// resolves each handle to a flat color: known handles have a fixed color,
// color names from the SVG palette are used as-is, and anything else gets a
// stable color derived from the handle.
var palette = map[string]color.RGBA{
	"ball":       colornames.White,
	"launcher":   colornames.Lightsteelblue,
	"platform":   colornames.Slategray,
	"gate":       colornames.Darkkhaki,
	"death_trap": colornames.Crimson,
	"treasure":   colornames.Gold,
	"goal":       colornames.Limegreen,
}

// Color returns the draw color for an asset handle.
func Color(handle string) color.RGBA {
	clean := cleanAssetPath(handle)
	if c, ok := palette[clean]; ok {
		return c
	}
	if c, ok := colornames.Map[clean]; ok {
		return c
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(clean))
	sum := h.Sum32()
	return color.RGBA{R: 64 + uint8(sum)%192, G: 64 + uint8(sum>>8)%192, B: 64 + uint8(sum>>16)%192, A: 0xff}
}

// cleanAssetPath reduces a handle such as "assets/Gold.png" to "gold".
func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(s, filepath.Ext(s))
	return strings.ToLower(s)
}
