package render

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/scene"
)

// shadowDarkness is the share of spot light a shadow takes away.
const shadowDarkness = 0.5

// Environment is everything besides the meshes that affects a frame.
type Environment struct {
	Camera     scene.Camera
	Ambient    scene.AmbientLight
	Spot       scene.SpotLight
	Fog        scene.Fog
	Background scene.Background
}

func rgb(c color.RGBA) math32.Vector3 {
	return math32.Vec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

func toRGBA(v math32.Vector3) color.RGBA {
	channel := func(f float32) uint8 {
		return uint8(math32.Round(math32.Clamp(f, 0, 1) * 255))
	}
	return color.RGBA{R: channel(v.X), G: channel(v.Y), B: channel(v.Z), A: 0xff}
}

// inCone reports whether p lies inside the spot's cone.
func inCone(spot *scene.SpotLight, p math32.Vector3) bool {
	axis := spot.Target.Sub(spot.Position)
	dir := p.Sub(spot.Position)
	if axis.Length() == 0 || dir.Length() == 0 {
		return false
	}
	return axis.Normal().Dot(dir.Normal()) >= math32.Cos(spot.Angle)
}

// spotIrradiance is the diffuse light the spot delivers to a surface at p
// with normal n.
func spotIrradiance(spot *scene.SpotLight, n, p math32.Vector3) math32.Vector3 {
	toLight := spot.Position.Sub(p)
	if toLight.Length() == 0 || !inCone(spot, p) {
		return math32.Vector3{}
	}
	ndotl := n.Dot(toLight.Normal())
	if ndotl <= 0 {
		return math32.Vector3{}
	}
	return rgb(spot.Color).MulScalar(spot.Intensity * ndotl)
}

// lambert lights base at p. spotScale scales the spot term, 1 for lit
// surfaces and less inside shadows.
func lambert(env *Environment, base color.RGBA, n, p math32.Vector3, spotScale float32) math32.Vector3 {
	light := rgb(env.Ambient.Color).Add(spotIrradiance(&env.Spot, n, p).MulScalar(spotScale))
	return rgb(base).Mul(light)
}

// fogFactor is the FogExp2 blend weight at view depth.
func fogFactor(fog *scene.Fog, depth float32) float32 {
	d := fog.Density * depth
	return math32.Clamp(1-math32.Exp(-d*d), 0, 1)
}

func applyFog(fog *scene.Fog, c math32.Vector3, depth float32) math32.Vector3 {
	f := fogFactor(fog, depth)
	return c.MulScalar(1 - f).Add(rgb(fog.Color).MulScalar(f))
}
