// Command usami-preview renders a job file progressively into a window,
// refining the image one sample pass at a time so convergence can be
// watched live instead of waiting for a finished PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/daiyousei-qz/Usami/camera"
	"github.com/daiyousei-qz/Usami/config"
	"github.com/daiyousei-qz/Usami/core"
	"github.com/daiyousei-qz/Usami/film"
	"github.com/daiyousei-qz/Usami/integrator"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/preview"
	"github.com/daiyousei-qz/Usami/scene"
	"github.com/daiyousei-qz/Usami/workspace"
	"github.com/daiyousei-qz/Usami/world"
)

func main() {
	jobPath := flag.String("job", "", "path to a YAML render job file")
	flag.Parse()

	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "usami-preview: -job is required")
		os.Exit(1)
	}

	if err := run(*jobPath); err != nil {
		fmt.Fprintf(os.Stderr, "usami-preview: %v\n", err)
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

	win, err := core.NewWindow(core.WindowConfig{
		Width:     job.Width,
		Height:    job.Height,
		Title:     fmt.Sprintf("usami-preview: %s", job.ScenePath),
		Resizable: false,
		VSync:     true,
		GLContext: true,
	})
	if err != nil {
		return fmt.Errorf("open preview window: %w", err)
	}
	defer win.Destroy()

	blitter, err := preview.NewBlitter(job.Width, job.Height)
	if err != nil {
		return fmt.Errorf("set up preview blitter: %w", err)
	}
	gl.Viewport(0, 0, int32(job.Width), int32(job.Height))

	fb := film.New(job.Width, job.Height)
	workers := make([]workerState, runtime.GOMAXPROCS(0))
	for i := range workers {
		workers[i] = workerState{
			rng: math.NewRNG(uint64(i) + 1),
			ws:  workspace.New(),
			pt:  integrator.NewPathTracing(job.MinBounce, job.MaxBounce),
		}
	}

	for !win.ShouldClose() {
		renderPass(fb, scn, cam, workers)

		blitter.Draw(fb.ToRGBA(job.Gamma))
		win.SwapBuffers()
		win.PollEvents()
	}

	return nil
}

type workerState struct {
	rng *math.RNG
	ws  *workspace.Workspace
	pt  *integrator.PathTracing
}

// renderPass adds exactly one sample per pixel to fb, tiled by row
// range across the worker pool so the framebuffer keeps converging a
// frame at a time instead of blocking on a full job's worth of samples.
func renderPass(fb *film.Framebuffer, scn *world.Scene, cam *camera.Camera, workers []workerState) {
	rowsPerWorker := (fb.Height + len(workers) - 1) / len(workers)

	var wg sync.WaitGroup
	for i := range workers {
		rowStart := i * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > fb.Height {
			rowEnd = fb.Height
		}
		if rowStart >= rowEnd {
			continue
		}

		wg.Add(1)
		go func(w *workerState, rowStart, rowEnd int) {
			defer wg.Done()
			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < fb.Width; x++ {
					u0, u1 := w.rng.Next2D()
					ray := cam.SpawnRay(x, y, math.Vec2{X: u0, Y: u1})
					fb.Accumulate(x, y, w.pt.Li(scn, w.ws, w.rng, ray))
				}
			}
		}(&workers[i], rowStart, rowEnd)
	}
	wg.Wait()
}
