package render

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/internal/vector"
)

// Run renders every pixel of the renderer's camera into a freshly allocated
// buffer, using the atomic-counter dynamic scheduler of spec §4.8, and
// reports progress to progressOut while it runs. baseSeed derives one
// independent RNG per worker via vector.DeriveSeed.
func (r *Renderer) Run(baseSeed uint64, progressOut io.Writer) []vector.Vec3 {
	width, height := r.Camera.ImageWidth, r.Camera.ImageHeight
	total := width * height
	pixels := make([]vector.Vec3, total)

	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}

	var next atomic.Uint64
	var done atomic.Uint64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()
			rng := vector.NewRNG(vector.DeriveSeed(baseSeed, workerIndex))

			for {
				start := int(next.Add(PixelsPerTile) - PixelsPerTile)
				if start >= total {
					return
				}
				end := start + PixelsPerTile
				if end > total {
					end = total
				}

				for i := start; i < end; i++ {
					x, y := i%width, i/width
					pixels[i] = r.PixelColor(x, y, rng)
				}
				done.Add(uint64(end - start))
			}
		}(w)
	}

	stop := make(chan struct{})
	var progressWg sync.WaitGroup
	if progressOut != nil {
		progressWg.Add(1)
		go func() {
			defer progressWg.Done()
			reportProgress(progressOut, &done, total, stop)
		}()
	}

	wg.Wait()
	close(stop)
	progressWg.Wait()

	return pixels
}

// reportProgress polls done roughly every 100ms and prints a progress bar
// until total pixels are complete (spec §4.8).
func reportProgress(out io.Writer, done *atomic.Uint64, total int, stop <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			printBar(out, done.Load(), total)
		case <-stop:
			printBar(out, uint64(total), total)
			fmt.Fprintln(out)
			return
		}
	}
}

func printBar(out io.Writer, done uint64, total int) {
	const width = 40
	frac := float64(done) / float64(total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * width)
	fmt.Fprintf(out, "\r[%s%s] %3.0f%%", barRun("#", filled), barRun("-", width-filled), frac*100)
}

func barRun(ch string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch[0]
	}
	return string(b)
}
