// Package config describes the YAML job file both cmd binaries read to
// configure a render: which scene to load, at what resolution, and how
// hard to sample it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RenderJob is the on-disk description of a single render invocation.
type RenderJob struct {
	ScenePath  string `yaml:"scene"`
	OutputPath string `yaml:"output"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MinBounce       int `yaml:"min_bounce"`
	MaxBounce       int `yaml:"max_bounce"`

	Gamma float32 `yaml:"gamma"`
}

// DefaultRenderJob fills in the values a job file is allowed to omit.
func DefaultRenderJob() RenderJob {
	return RenderJob{
		Width:           640,
		Height:          480,
		SamplesPerPixel: 32,
		MinBounce:       3,
		MaxBounce:       8,
		Gamma:           2.2,
	}
}

// LoadRenderJob reads and validates a job file from path.
func LoadRenderJob(path string) (RenderJob, error) {
	job := DefaultRenderJob()

	data, err := os.ReadFile(path)
	if err != nil {
		return RenderJob{}, fmt.Errorf("config: read job file: %w", err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return RenderJob{}, fmt.Errorf("config: parse job file: %w", err)
	}

	if job.ScenePath == "" {
		return RenderJob{}, fmt.Errorf("config: job file %s: scene is required", path)
	}
	if job.Width <= 0 || job.Height <= 0 {
		return RenderJob{}, fmt.Errorf("config: job file %s: width/height must be positive", path)
	}
	if job.SamplesPerPixel <= 0 {
		return RenderJob{}, fmt.Errorf("config: job file %s: samples_per_pixel must be positive", path)
	}

	return job, nil
}
