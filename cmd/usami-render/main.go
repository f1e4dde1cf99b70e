// Command usami-render renders a job file to a PNG and exits.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"
	"sync"

	"github.com/daiyousei-qz/Usami/camera"
	"github.com/daiyousei-qz/Usami/config"
	"github.com/daiyousei-qz/Usami/film"
	"github.com/daiyousei-qz/Usami/integrator"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/scene"
	"github.com/daiyousei-qz/Usami/workspace"
	"github.com/daiyousei-qz/Usami/world"
)

func main() {
	jobPath := flag.String("job", "", "path to a YAML render job file")
	flag.Parse()

	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "usami-render: -job is required")
		os.Exit(1)
	}

	if err := run(*jobPath); err != nil {
		fmt.Fprintf(os.Stderr, "usami-render: %v\n", err)
		os.Exit(1)
	}
}

func run(jobPath string) error {
	job, err := config.LoadRenderJob(jobPath)
	if err != nil {
		return err
	}

	model, err := scene.Load(job.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	scn, cam := world.Build(model, job.Width, job.Height)
	if cam == nil {
		return fmt.Errorf("scene %s authors no camera node", job.ScenePath)
	}

	fb := film.New(job.Width, job.Height)
	renderInto(fb, scn, cam, job)

	return writePNG(job.OutputPath, fb.ToRGBA(job.Gamma), job.Width, job.Height)
}

// renderInto tiles the image by row range across GOMAXPROCS workers,
// each with its own RNG and Workspace so no render-time state is ever
// shared: the scene is read-only once Commit has run.
func renderInto(fb *film.Framebuffer, scn *world.Scene, cam *camera.Camera, job config.RenderJob) {
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (job.Height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		rowStart := w * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > job.Height {
			rowEnd = job.Height
		}
		if rowStart >= rowEnd {
			continue
		}

		wg.Add(1)
		go func(rowStart, rowEnd, seed int) {
			defer wg.Done()

			rng := math.NewRNG(uint64(seed) + 1)
			ws := workspace.New()
			pt := integrator.NewPathTracing(job.MinBounce, job.MaxBounce)

			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < job.Width; x++ {
					for s := 0; s < job.SamplesPerPixel; s++ {
						u0, u1 := rng.Next2D()
						ray := cam.SpawnRay(x, y, math.Vec2{X: u0, Y: u1})
						fb.Accumulate(x, y, pt.Li(scn, ws, rng, ray))
					}
				}
			}
		}(rowStart, rowEnd, w)
	}
	wg.Wait()
}

func writePNG(path string, rgba []uint8, width, height int) error {
	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
