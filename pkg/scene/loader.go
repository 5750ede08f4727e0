package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davg/go-parallel-raytracer/pkg/core"
	"github.com/davg/go-parallel-raytracer/pkg/geometry"
)

// SphereSpec describes one sphere in a scene file
type SphereSpec struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

// BackgroundSpec describes the sky gradient endpoints in a scene file
type BackgroundSpec struct {
	Top    *[3]float64 `yaml:"top,omitempty"`
	Bottom *[3]float64 `yaml:"bottom,omitempty"`
}

// FileSpec is the on-disk scene description
type FileSpec struct {
	Background BackgroundSpec `yaml:"background"`
	Spheres    []SphereSpec   `yaml:"spheres"`
}

// Load reads a YAML scene file. Omitted background colors fall back to the
// standard sky gradient; a file with no spheres renders pure background.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}

	var spec FileSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}

	s := NewScene()
	if spec.Background.Top != nil {
		s.TopColor = vec3FromArray(*spec.Background.Top)
	}
	if spec.Background.Bottom != nil {
		s.BottomColor = vec3FromArray(*spec.Background.Bottom)
	}
	for _, sp := range spec.Spheres {
		s.Add(geometry.NewSphere(vec3FromArray(sp.Center), sp.Radius))
	}

	return s, nil
}

// Save writes a scene description to a YAML file
func Save(path string, spec *FileSpec) error {
	b, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func vec3FromArray(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
