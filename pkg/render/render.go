// Package render rasterizes fractal viewport snapshots into RGBA images,
// spreading rows across a fixed pool of workers.
package render

import (
	"fmt"
	"github.com/OxFEE1DEAD/fractalrs/pkg/fractal"
	"image"
	"runtime"
	"sync"
)

// A Renderer turns viewport snapshots into images. It is stateless apart
// from its worker count and safe for concurrent use.
type Renderer struct {
	workers int
}

// New returns a Renderer running the given number of workers per frame.
// A count below one takes the machine's CPU count.
func New(workers int) *Renderer {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers}
}

// Workers reports how many workers each frame is split across.
func (r *Renderer) Workers() int {
	return r.workers
}

// Render rasterizes one snapshot into a fresh RGBA image. Rows are dealt
// out in contiguous chunks and every worker writes only its own rows, so
// the raster is identical for any worker count.
func (r *Renderer) Render(v fractal.Viewport) (*image.RGBA, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	chunk := (v.Height + r.workers - 1) / r.workers

	wg := sync.WaitGroup{}
	for y0 := 0; y0 < v.Height; y0 += chunk {
		y1 := y0 + chunk
		if y1 > v.Height {
			y1 = v.Height
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < v.Width; x++ {
					n := fractal.Iterate(v.PointAt(x, y), v)
					img.SetRGBA(x, y, Colorize(n, v))
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return img, nil
}
