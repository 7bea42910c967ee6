package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/strider/vecmath"
)

// AxisController is a named look-axis input on a camera rig.
type AxisController struct {
	Name    string
	Enabled bool
	// Gain scales look input for this axis, in degrees per input unit per second.
	Gain float64
}

// Rig is the camera rig collaborator: a virtual camera that can be switched
// on and off, exposes its lens and its named axis controllers.
type Rig interface {
	SetActive(active bool)
	Active() bool
	SetFieldOfView(degrees float64)
	FieldOfView() float64
	Controllers() []*AxisController
	Yaw() float64
}

// VirtualCamera is an in-memory Rig with pan and tilt controllers.
type VirtualCamera struct {
	Name string

	active      bool
	fieldOfView float64
	yaw         float64
	pitch       float64
	minPitch    float64
	maxPitch    float64
	controllers []*AxisController
}

// NewVirtualCamera creates an inactive rig with the standard pan and tilt controllers.
func NewVirtualCamera(name string, fieldOfView, sensitivity float64) *VirtualCamera {
	return &VirtualCamera{
		Name:        name,
		fieldOfView: fieldOfView,
		minPitch:    -70,
		maxPitch:    70,
		controllers: []*AxisController{
			{Name: LookAxisName, Enabled: true, Gain: sensitivity},
			{Name: TiltAxisName, Enabled: true, Gain: sensitivity},
		},
	}
}

func (c *VirtualCamera) SetActive(active bool)          { c.active = active }
func (c *VirtualCamera) Active() bool                   { return c.active }
func (c *VirtualCamera) SetFieldOfView(degrees float64) { c.fieldOfView = degrees }
func (c *VirtualCamera) FieldOfView() float64           { return c.fieldOfView }
func (c *VirtualCamera) Controllers() []*AxisController { return c.controllers }
func (c *VirtualCamera) Yaw() float64                   { return c.yaw }
func (c *VirtualCamera) Pitch() float64                 { return c.pitch }

// SetPitchLimits bounds the tilt controller.
func (c *VirtualCamera) SetPitchLimits(min, max float64) {
	c.minPitch, c.maxPitch = min, max
	c.pitch = mgl64.Clamp(c.pitch, min, max)
}

// SetYaw points the rig, e.g. to follow the body it is attached to.
func (c *VirtualCamera) SetYaw(yaw float64) {
	c.yaw = vecmath.NormalizeAngle(yaw)
}

// Controller returns the controller with the given name, or nil.
func (c *VirtualCamera) Controller(name string) *AxisController {
	return findController(c, name)
}

// ApplyLook rotates the rig by look input through its enabled controllers.
func (c *VirtualCamera) ApplyLook(delta vecmath.Vec2, dt float64) {
	if pan := c.Controller(LookAxisName); pan != nil && pan.Enabled {
		c.SetYaw(c.yaw + delta.X*pan.Gain*dt)
	}
	if tilt := c.Controller(TiltAxisName); tilt != nil && tilt.Enabled {
		c.pitch = mgl64.Clamp(c.pitch-delta.Y*tilt.Gain*dt, c.minPitch, c.maxPitch)
	}
}

func findController(r Rig, name string) *AxisController {
	for _, ctrl := range r.Controllers() {
		if ctrl.Name == name {
			return ctrl
		}
	}
	return nil
}
