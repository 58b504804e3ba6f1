// Package controls binds the tweak panel to the scene: rotation speed,
// adding and removing cubes, and dumping the object list.
package controls

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/plus3/cubes/config"
	"github.com/plus3/cubes/scene"
	"gopkg.in/yaml.v3"
)

// ErrRotationSpeedRange is returned for speeds outside [0, MaxRotationSpeed].
var ErrRotationSpeedRange = errors.New("rotation speed out of range")

// Bridge exposes the panel operations on a scene.
type Bridge struct {
	scene  *scene.Scene
	logger *log.Logger
}

// NewBridge binds a bridge to s. Object dumps go to logger.
func NewBridge(s *scene.Scene, logger *log.Logger) *Bridge {
	return &Bridge{scene: s, logger: logger}
}

// RotationSpeed returns the current per-frame rotation speed.
func (b *Bridge) RotationSpeed() float32 {
	return b.scene.Controls().RotationSpeed
}

// SetRotationSpeed updates the rotation speed. Values outside
// [0, MaxRotationSpeed], NaN included, are rejected and leave the speed
// unchanged.
func (b *Bridge) SetRotationSpeed(v float32) error {
	if !(v >= 0 && v <= config.MaxRotationSpeed) {
		return fmt.Errorf("set %v: %w", v, ErrRotationSpeedRange)
	}
	b.scene.Controls().RotationSpeed = v
	return nil
}

// NumberOfObjects returns the mirrored object count.
func (b *Bridge) NumberOfObjects() int {
	return b.scene.Controls().NumberOfObjects
}

// AddCube adds a random cube.
func (b *Bridge) AddCube() {
	b.scene.AddCube()
}

// RemoveCube removes the last cube, if any.
func (b *Bridge) RemoveCube() {
	b.scene.RemoveCube()
}

// WriteObjects writes the object list to w as YAML.
func (b *Bridge) WriteObjects(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b.scene.Objects()); err != nil {
		return fmt.Errorf("encode objects: %w", err)
	}
	return enc.Close()
}

// OutputObjects logs the object list.
func (b *Bridge) OutputObjects() error {
	var sb strings.Builder
	if err := b.WriteObjects(&sb); err != nil {
		return err
	}
	b.logger.Printf("%d objects:\n%s", b.scene.Len(), sb.String())
	return nil
}
