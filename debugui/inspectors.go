package debugui

import (
	"fmt"
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/strider/anim"
	"github.com/plus3/strider/camera"
	"github.com/plus3/strider/locomotion"
)

// field is one label/value row of an inspector table.
type field struct {
	Label string
	Value string
}

func cameraFields(c *camera.Coordinator) []field {
	tps, fps := c.ThirdPersonRig(), c.FirstPersonRig()
	pan := "missing"
	for _, ctrl := range fps.Controllers() {
		if ctrl.Name == camera.LookAxisName {
			pan = strconv.FormatBool(ctrl.Enabled)
		}
	}
	return []field{
		{"State", c.State().String()},
		{"Yaw", fmt.Sprintf("%.1f", c.Yaw())},
		{"Third Person FOV", fmt.Sprintf("%.0f", tps.FieldOfView())},
		{"First Person FOV", fmt.Sprintf("%.0f", fps.FieldOfView())},
		{"First Person Pan", pan},
	}
}

func parameterFields(p *anim.Parameters) []field {
	var fields []field
	for _, name := range p.Floats() {
		fields = append(fields, field{name, fmt.Sprintf("%.2f", p.Float(name))})
	}
	for _, name := range p.Bools() {
		fields = append(fields, field{name, strconv.FormatBool(p.Bool(name))})
	}
	for _, name := range p.Integers() {
		fields = append(fields, field{name, strconv.Itoa(p.Integer(name))})
	}
	for _, name := range p.Triggers() {
		fields = append(fields, field{name, fmt.Sprintf("fired x%d", p.Triggered(name))})
	}
	return fields
}

// ControllerInspector shows every field of the controller's movement context.
func ControllerInspector(c *locomotion.Controller) Item {
	return Item{Render: func() {
		renderFields("Locomotion", structFields(c.State()))
	}}
}

// ConfigInspector shows the tuning the controller was built with.
func ConfigInspector(cfg locomotion.Config) Item {
	fields := structFields(cfg)
	return Item{Render: func() {
		renderFields("Tuning", fields)
	}}
}

// CameraInspector shows the active perspective and both rigs.
func CameraInspector(c *camera.Coordinator) Item {
	return Item{Render: func() {
		renderFields("Camera", cameraFields(c))
	}}
}

// AnimatorInspector lists every animation parameter written so far.
func AnimatorInspector(p *anim.Parameters) Item {
	return Item{Render: func() {
		renderFields("Animator", parameterFields(p))
	}}
}

func renderFields(title string, fields []field) {
	if !imgui.BeginV(title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(title+"Table", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, f := range fields {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(f.Label)
			imgui.TableNextColumn()
			imgui.Text(f.Value)
		}

		imgui.EndTable()
	}

	imgui.End()
}
