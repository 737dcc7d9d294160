package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"datagrid/pkg/game/renderer"
)

// newFontCache parses the embedded Go Regular font and returns a face cache
// over it.
func newFontCache() (*renderer.FaceCache[*text.GoTextFace], error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return renderer.NewFaceCache(renderer.FaceCacheSize, func(size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source: source,
			Size:   size,
		}
	}), nil
}
