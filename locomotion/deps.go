package locomotion

import (
	"errors"
	"log/slog"

	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/event"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/loop"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/vecmath"
)

// Body is the rigid body the controller drives.
type Body interface {
	Position() vecmath.Vec3
	Rotation() vecmath.Euler
	SetRotation(vecmath.Euler)
	Velocity() vecmath.Vec3
	AddForce(f vecmath.Vec3, mode physics.ForceMode)
}

// Collider is the body's capsule.
type Collider interface {
	SetHeight(float64)
	SetCenter(vecmath.Vec3)
}

// Physics answers the sensor queries and removes punched objects.
type Physics interface {
	CheckSphere(center vecmath.Vec3, radius float64, mask physics.LayerMask) bool
	Raycast(origin, dir vecmath.Vec3, maxDistance float64, mask physics.LayerMask) (physics.Hit, bool)
	OverlapSphere(center vecmath.Vec3, radius float64, mask physics.LayerMask) []physics.ColliderID
	Destroy(id physics.ColliderID) bool
}

// Animator receives animation parameter writes.
type Animator interface {
	SetFloat(name string, value float64)
	SetBool(name string, value bool)
	SetInteger(name string, value int)
	SetTrigger(name string)
}

// Camera is the read side of the camera coordinator plus the two mutators
// the controller is allowed to call.
type Camera interface {
	State() camera.State
	Yaw() float64
	SetFieldOfView(degrees float64)
	SetLookAxisControllerEnabled(enabled bool)
	OnPerspectiveChanged(fn func(camera.State)) event.Subscription
}

// AnimationEvents delivers named animation events such as the punch end.
type AnimationEvents interface {
	OnEvent(fn func(name string)) event.Subscription
}

// Clock reports the duration of the tick in progress.
type Clock interface {
	DeltaTime() float64
}

// Deps are the controller's collaborators. AnimationEvents and Logger are
// optional.
type Deps struct {
	Input           *input.Dispatcher
	Camera          Camera
	Body            Body
	Collider        Collider
	Physics         Physics
	Animator        Animator
	AnimationEvents AnimationEvents
	Timers          *loop.Timers
	Clock           Clock
	Logger          *slog.Logger
}

func (d Deps) validate() error {
	var errs []error
	if d.Input == nil {
		errs = append(errs, errors.New("input dispatcher is required"))
	}
	if d.Camera == nil {
		errs = append(errs, errors.New("camera is required"))
	}
	if d.Body == nil {
		errs = append(errs, errors.New("body is required"))
	}
	if d.Collider == nil {
		errs = append(errs, errors.New("collider is required"))
	}
	if d.Physics == nil {
		errs = append(errs, errors.New("physics is required"))
	}
	if d.Animator == nil {
		errs = append(errs, errors.New("animator is required"))
	}
	if d.Timers == nil {
		errs = append(errs, errors.New("timers are required"))
	}
	if d.Clock == nil {
		errs = append(errs, errors.New("clock is required"))
	}
	return errors.Join(errs...)
}
