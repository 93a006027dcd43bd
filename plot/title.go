package plot

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/devfolio/playground"
)

// Title baseline origin, in pixels.
const (
	titleX = 10
	titleY = 20
)

// Title draws text at the top-left corner of img in the theme's title color.
func Title(img *playground.Pixmap, text string, theme Theme) {
	if img == nil || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(theme.title()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(titleX, titleY),
	}
	d.DrawString(text)
}

// TitleWidth returns the advance of text in the title face, in pixels.
func TitleWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
