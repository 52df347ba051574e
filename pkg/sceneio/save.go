package sceneio

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/propsnap/pkg/scene"
)

// ReadFile loads the raw YAML document without building a scene. Use it when
// the document needs to be written back after conforming.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return &file, nil
}

// Build constructs the scene described by the document. Object names must be
// unique: selection and transform write-back both look objects up by name.
func (f *File) Build() (*scene.Scene, error) {
	s := scene.New()
	seen := make(map[string]bool, len(f.Objects))
	for i, spec := range f.Objects {
		if seen[spec.Name] {
			return nil, fmt.Errorf("object %d (%s): duplicate name", i, spec.Name)
		}
		seen[spec.Name] = true
		obj, err := buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, spec.Name, err)
		}
		s.Add(obj)
	}
	return s, nil
}

// ApplyTransforms copies each scene object's position and rotation back into
// the matching spec, so a subsequent Save reflects the conformed layout.
func (f *File) ApplyTransforms(s *scene.Scene) {
	for i := range f.Objects {
		obj := s.Find(f.Objects[i].Name)
		if obj == nil {
			continue
		}
		p := obj.Position()
		f.Objects[i].Position = [3]float64{p.X(), p.Y(), p.Z()}
		q := obj.Rotation()
		f.Objects[i].Rotation = []float64{q.W, q.V.X(), q.V.Y(), q.V.Z()}
	}
}

// Save writes the document to path, creating parent directories as needed.
func (f *File) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
