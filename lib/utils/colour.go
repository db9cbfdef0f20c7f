package utils

import (
	"fmt"
	"image/color"
	"regexp"
)

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

func ColourValidate(c string) bool {
	return colourPattern.MatchString(c)
}

func ColourParse(s string) (c color.RGBA) {
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}

// ColourFloats converts a colour into the normalised components
// expected by gl.ClearColor and vec4 uniforms.
func ColourFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
