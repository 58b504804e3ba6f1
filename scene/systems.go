package scene

import "github.com/plus3/cubes/ecs"

// RotationSystem turns every mesh except the ground plane by the current
// rotation speed around all three axes. The speed is per frame.
type RotationSystem struct {
	Meshes ecs.Query[struct {
		*Object
		*Transform
	}]
	Controls ecs.Singleton[Controls]
}

func (r *RotationSystem) Execute(frame *ecs.UpdateFrame) {
	controls := r.Controls.Get()
	if controls == nil || controls.RotationSpeed == 0 {
		return
	}
	speed := controls.RotationSpeed

	for mesh := range r.Meshes.Values() {
		if mesh.Object.Kind == KindPlane {
			continue
		}
		rot := &mesh.Transform.Rotation
		rot.X += speed
		rot.Y += speed
		rot.Z += speed
	}
}
