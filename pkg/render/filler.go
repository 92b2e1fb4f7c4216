// pkg/render/filler.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Filler заливает векторные контуры одним цветом, переиспользуя буферы вершин.
type Filler struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func NewFiller() *Filler {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &Filler{img: img}
}

// Fill рисует замкнутый контур path на target
func (f *Filler) Fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	f.vs, f.is = path.AppendVerticesAndIndicesForFilling(f.vs[:0], f.is[:0])
	for i := range f.vs {
		f.vs[i].ColorR = float32(c.R) / 255
		f.vs[i].ColorG = float32(c.G) / 255
		f.vs[i].ColorB = float32(c.B) / 255
		f.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(f.vs, f.is, f.img, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
