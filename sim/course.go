package sim

import (
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// SpawnPoint is where the player starts, facing +Z.
var SpawnPoint = vecmath.Vec3{}

// Course names the colliders of the practice course.
type Course struct {
	Ground  physics.ColliderID
	Curb    physics.ColliderID
	Wall    physics.ColliderID
	Tower   physics.ColliderID
	Dummies []physics.ColliderID
}

// BuildCourse lays out a flat field with a curb low enough to step over, a
// climbable wall straight ahead, a tower to glide from and a row of
// punchable dummies to the left of the spawn point.
func BuildCourse(w *physics.World) Course {
	c := Course{
		Ground: w.AddBox("ground", vecmath.Vec3{X: -30, Y: -1, Z: -30}, vecmath.Vec3{X: 30, Y: 0, Z: 30}, physics.LayerGround),
		Curb:   w.AddBox("curb", vecmath.Vec3{X: -1, Y: 0, Z: 3}, vecmath.Vec3{X: 1, Y: 0.25, Z: 3.6}, physics.LayerGround),
		Wall:   w.AddBox("wall", vecmath.Vec3{X: -3, Y: 0, Z: 8}, vecmath.Vec3{X: 3, Y: 6, Z: 8.6}, physics.LayerClimbable),
		Tower:  w.AddBox("tower", vecmath.Vec3{X: 6, Y: 0, Z: 0}, vecmath.Vec3{X: 9, Y: 8, Z: 3}, physics.LayerGround),
	}
	for _, z := range []float64{2, 4, 6} {
		c.Dummies = append(c.Dummies, w.AddSphere("dummy", vecmath.Vec3{X: -4, Y: 1, Z: z}, 0.3, physics.LayerHittable))
	}
	return c
}
