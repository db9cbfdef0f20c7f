package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mattn/go-pointer"
)

// Attach routes the window's input callbacks to in. The window keeps
// only an opaque handle; Detach releases it.
func (in *Input) Attach(w *glfw.Window) {
	w.SetUserPointer(pointer.Save(in))
	w.SetKeyCallback(keyCallback)
	w.SetCursorPosCallback(cursorCallback)
	w.SetScrollCallback(scrollCallback)
	w.SetFocusCallback(focusCallback)
}

func Detach(w *glfw.Window) {
	if p := w.GetUserPointer(); p != nil {
		pointer.Unref(p)
		w.SetUserPointer(nil)
	}
	w.SetKeyCallback(nil)
	w.SetCursorPosCallback(nil)
	w.SetScrollCallback(nil)
	w.SetFocusCallback(nil)
}

func fromWindow(w *glfw.Window) *Input {
	in, _ := pointer.Restore(w.GetUserPointer()).(*Input)
	return in
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	in := fromWindow(w)
	if in == nil {
		return
	}
	in.KeyEvent(key, action)
	if in.CloseRequested() {
		w.SetShouldClose(true)
	}
}

func cursorCallback(w *glfw.Window, x, y float64) {
	if in := fromWindow(w); in != nil {
		in.CursorEvent(x, y)
	}
}

func scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if in := fromWindow(w); in != nil {
		in.ScrollEvent(yoff)
	}
}

func focusCallback(w *glfw.Window, focused bool) {
	if in := fromWindow(w); in != nil {
		in.FocusEvent(focused)
	}
}
