package render

import (
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = "" // Regular
	FontStyleMedium  FontStyle = "medium"
	FontStyleBold    FontStyle = "bold"
)

// Кешируется только разбор шрифта: face не потокобезопасен, его создаём на каждый вызов
var (
	fontMu      sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

func fontData(style FontStyle) []byte {
	switch style {
	case FontStyleMedium:
		return gomedium.TTF
	case FontStyleBold:
		return gobold.TTF
	default:
		return goregular.TTF
	}
}

// loadFont ставит шрифт указанного стиля или basicfont как fallback
func loadFont(dc *gg.Context, size float64, style ...FontStyle) {
	fontStyle := FontStyleDefault
	if len(style) > 0 {
		fontStyle = style[0]
	}

	face, err := fontFace(fontStyle, size)
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

func fontFace(style FontStyle, size float64) (font.Face, error) {
	parsed, err := parsedFont(style)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func parsedFont(style FontStyle) (*opentype.Font, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if parsed, ok := cachedFonts[style]; ok {
		return parsed, nil
	}

	parsed, err := opentype.Parse(fontData(style))
	if err != nil {
		return nil, err
	}
	cachedFonts[style] = parsed
	return parsed, nil
}
