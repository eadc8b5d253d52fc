// Package ui wraps the imgui SDL backend and the widgets the scene editor
// builds its panels from.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]

	// ran is set once Run has been entered; the backend loop releases the
	// window and context itself when it returns.
	ran bool
}

// NewBackend creates the window and its GL context.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})
	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		b.Close()
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.ran = true
	b.backend.Run(renderFunc)
}

// Close tears down a backend whose loop never ran: the close request is
// seen on the first frame and the loop exits through its normal cleanup.
// It does nothing after Run.
func (b *Backend) Close() {
	if b == nil || b.backend == nil || b.ran {
		return
	}
	b.ran = true
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area, which excludes the menu bar.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// FrameRate returns imgui's running frames-per-second estimate.
func FrameRate() float32 {
	return imgui.CurrentIO().Framerate()
}

// GLImage draws a GL texture rendered bottom-up, flipping it for display.
func GLImage(texture uint32, width, height float32) {
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*ref,
		imgui.NewVec2(width, height),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// Gesture is the mouse input over the last drawn item.
type Gesture struct {
	DX, DY float32
	Wheel  float32

	// Clicked is set on a left click, with X and Y relative to the item's
	// top left corner.
	Clicked bool
	X, Y    float32
}

// ItemGesture returns the left-drag delta and wheel over the last item, or
// the zero gesture when the item is not hovered.
func ItemGesture() Gesture {
	if !imgui.IsItemHovered() {
		return Gesture{}
	}
	var g Gesture
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		d := imgui.CurrentIO().MouseDelta()
		g.DX, g.DY = d.X, d.Y
	}
	g.Wheel = imgui.CurrentIO().MouseWheel()
	if imgui.IsItemClicked() {
		pos, origin := imgui.MousePos(), imgui.ItemRectMin()
		g.Clicked = true
		g.X, g.Y = pos.X-origin.X, pos.Y-origin.Y
	}
	return g
}

// SliderFloat edits v within [low, high]. Typed-in values are clamped.
func SliderFloat(label string, v *float32, low, high float32) bool {
	if !imgui.SliderFloat(label, v, low, high) {
		return false
	}
	*v = math.Clamp(*v, low, high)
	return true
}

// SliderInt edits v within [low, high].
func SliderInt(label string, v *int, low, high int) bool {
	n := int32(*v)
	if !imgui.SliderInt(label, &n, int32(low), int32(high)) {
		return false
	}
	*v = math.Clamp(int(n), low, high)
	return true
}

// SliderVec3 edits every component of v within [low, high].
func SliderVec3(label string, v *math.Vec3, low, high float32) bool {
	a := v.Arr()
	if !imgui.SliderFloat3(label, &a, low, high) {
		return false
	}
	*v = math.ClampVec3(math.FromArr(a), low, high)
	return true
}

// ColorEdit edits an RGB color stored in v.
func ColorEdit(label string, v *math.Vec3) bool {
	a := v.Arr()
	if !imgui.ColorEdit3(label, &a) {
		return false
	}
	*v = math.ClampVec3(math.FromArr(a), 0, 1)
	return true
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
