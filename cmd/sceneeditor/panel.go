package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/raytrace-demo/internal/engine/input"
	"github.com/Faultbox/raytrace-demo/internal/engine/picking"
	"github.com/Faultbox/raytrace-demo/internal/engine/renderer"
	"github.com/Faultbox/raytrace-demo/internal/engine/scene"
	"github.com/Faultbox/raytrace-demo/internal/engine/ui"
)

const panelWidth = 360

const (
	keyScreenshot    = imgui.KeyF12
	keyToggle        = imgui.KeyT
	keyResetRotation = imgui.KeyR
)

// Editing ranges for the panel sliders.
const (
	cameraRange   = 20
	objectRange   = 5
	lightRange    = 20
	minRadius     = 0.1
	maxRadius     = 3
	minHalfExtent = 0.1
	maxHalfExtent = 5
	maxIntensity  = 5
	minSpeed      = 0.001
	maxSpeed      = 0.05
)

func (ed *Editor) renderMenu() {
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open Model...") {
				ed.openModelDialog()
			}
			if imgui.MenuItemBool("Save Config") {
				ed.saveConfig()
			}
			if imgui.MenuItemBool("Screenshot") {
				ed.state.Screenshot = true
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				ed.Close()
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}
}

func (ed *Editor) renderLayout() {
	workPos, workSize := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, workSize.Y))
	if imgui.BeginV("Ray Tracing Control Panel", nil, flags) {
		ed.renderControls()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+panelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-panelWidth, workSize.Y))
	if imgui.BeginV("View", nil, flags|imgui.WindowFlagsNoScrollbar) {
		ed.renderView()
	}
	imgui.End()

	if ed.status != "" && time.Since(ed.statusTime) < 2*time.Second {
		notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+panelWidth+10, workPos.Y+10))
		imgui.SetNextWindowBgAlpha(0.85)
		if imgui.BeginV("##Status", nil, notifyFlags) {
			imgui.Text(ed.status)
		}
		imgui.End()
	}
}

func (ed *Editor) renderView() {
	avail := imgui.ContentRegionAvail()
	ed.view.Resize(int(avail.X), int(avail.Y))
	ed.view.Render(func(width, height int) {
		ed.renderer.Draw(renderer.Frame{
			Camera:   ed.state.Camera,
			Width:    width,
			Height:   height,
			Settings: &ed.state.Settings,
			Scene:    ed.state.Scene,
		})
	})

	w, h := ed.view.Size()
	ui.GLImage(ed.view.ColorTexture(), float32(w), float32(h))

	g := ui.ItemGesture()
	ed.state.Orbit(input.Drag{DX: g.DX, DY: g.DY, Wheel: g.Wheel})
	if g.Clicked && ed.state.Settings.RayTracing {
		r := picking.ScreenToRay(ed.state.Camera, g.X, g.Y, w, h)
		if i, ok := picking.Pick(ed.state.Scene, r); ok {
			ed.selected = i
		}
	}
}

func (ed *Editor) renderControls() {
	s := &ed.state.Settings
	imgui.Checkbox("Use Ray Tracing", &s.RayTracing)
	imgui.Separator()

	if s.RayTracing {
		ed.renderRayTracingSettings()
		ed.renderCameraSettings()
		ed.renderObjects()
		ed.renderLights()
	} else {
		ed.renderRasterSettings()
	}
}

func (ed *Editor) renderRayTracingSettings() {
	if !imgui.TreeNodeExStrV("Ray Tracing Settings", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	s := &ed.state.Settings
	imgui.Checkbox("Enable Shadows", &s.Shadows)
	imgui.Checkbox("Enable Reflections", &s.Reflections)
	ui.SliderInt("Max Reflection Bounces", &s.MaxBounces, 0, 10)
	ui.SliderFloat("Global Reflectivity", &s.Reflectivity, 0, 1)
	imgui.TreePop()
}

func (ed *Editor) renderCameraSettings() {
	if !imgui.TreeNodeExStrV("Camera Settings", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	c := ed.state.Camera
	ui.SliderFloat("Field of View", &c.FOV, 30, 90)
	ui.SliderVec3("Camera Position", &c.Position, -cameraRange, cameraRange)
	imgui.TextDisabled("(Drag the view to orbit, scroll to zoom)")
	imgui.TreePop()
}

func (ed *Editor) renderObjects() {
	if !imgui.TreeNodeExStrV("Scene Objects", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	reg := ed.state.Scene
	imgui.Text(fmt.Sprintf("Objects: %d / %d", reg.NumObjects(), scene.MaxObjects))

	for i := 0; i < reg.NumObjects(); i++ {
		o := reg.Object(i)
		nodeFlags := imgui.TreeNodeFlagsNone
		if i == ed.selected {
			nodeFlags |= imgui.TreeNodeFlagsSelected
			imgui.SetNextItemOpen(true)
		}
		if !imgui.TreeNodeExStrV(fmt.Sprintf("Object %d (%s)", i, o.Kind()), nodeFlags) {
			continue
		}
		imgui.PushIDInt(int32(i))
		ui.SliderVec3("Position", &o.Position, -objectRange, objectRange)
		switch shape := o.Shape.(type) {
		case *scene.Sphere:
			ui.SliderFloat("Radius", &shape.Radius, minRadius, maxRadius)
		case *scene.Cube:
			ui.SliderVec3("Half Extents", &shape.HalfExtents, minHalfExtent, maxHalfExtent)
		case *scene.MeshRef:
			imgui.TextDisabled(ed.mesh.source.String())
		}
		ui.ColorEdit("Color", &o.Color)
		ui.SliderFloat("Reflectivity", &o.Reflectivity, 0, 1)
		imgui.PopID()
		imgui.TreePop()
	}

	if imgui.Button("Reset Scene") {
		reg.Reset(true)
		ed.selected = -1
	}
	imgui.TreePop()
}

func (ed *Editor) renderLights() {
	if !imgui.TreeNodeExStrV("Lights", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	reg := ed.state.Scene
	imgui.Text(fmt.Sprintf("Lights: %d / %d", reg.NumLights(), scene.MaxLights))
	ui.ColorEdit("Ambient Light", &reg.Ambient)

	for i := 0; i < reg.NumLights(); i++ {
		l := reg.Light(i)
		if !imgui.TreeNodeExStrV(fmt.Sprintf("Light %d", i), 0) {
			continue
		}
		imgui.PushIDInt(int32(i))
		ui.SliderVec3("Position", &l.Position, -lightRange, lightRange)
		ui.ColorEdit("Color", &l.Color)
		ui.SliderFloat("Intensity", &l.Intensity, 0, maxIntensity)
		imgui.PopID()
		imgui.TreePop()
	}
	imgui.TreePop()
}

func (ed *Editor) renderRasterSettings() {
	m := ed.mesh
	imgui.Text("Model: " + m.source.String())
	imgui.Text(fmt.Sprintf("Vertices: %d", m.vertices))
	imgui.Text(fmt.Sprintf("Total Triangles: %d", m.triangles))
	if m.dropped > 0 {
		imgui.TextDisabled(fmt.Sprintf("(%d triangles not ray traced)", m.dropped))
	}

	imgui.Separator()
	imgui.Text("Camera Controls:")
	ui.SliderFloat("Field of View", &ed.state.Camera.FOV, 30, 90)

	imgui.Separator()
	imgui.Text("Rotation Controls:")
	s := &ed.state.Settings
	ui.SliderFloat("Rotation", &s.Rotation, 0, scene.MaxRotation)
	imgui.Checkbox("Auto Rotate", &s.AutoRotate)
	if s.AutoRotate {
		ui.SliderFloat("Speed", &s.RotationSpeed, minSpeed, maxSpeed)
	}

	imgui.Text("Rotation Axis")
	for i, axis := range []scene.Axis{scene.AxisX, scene.AxisY, scene.AxisZ} {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.RadioButtonBool(axis.String()+"-Axis", s.RotationAxis == axis) {
			s.RotationAxis = axis
		}
	}
}
