package tui

import "testing"

func TestNewInputState(t *testing.T) {
	state := NewInputState()

	if state == nil {
		t.Fatal("NewInputState returned nil")
	}

	AssertModelField(t, "input", state.GetInput(), "")
	AssertModelField(t, "cursor", state.GetCursor(), 0)
}

func TestInputState_Initialize(t *testing.T) {
	state := NewInputState()
	state.Initialize("notes.txt")

	AssertModelField(t, "input", state.GetInput(), "notes.txt")
	AssertModelField(t, "cursor", state.GetCursor(), 9)

	state.Reset()
	AssertModelField(t, "input", state.GetInput(), "")
	AssertModelField(t, "cursor", state.GetCursor(), 0)
}

func TestInputState_Editing(t *testing.T) {
	state := NewInputState()
	state.Insert("notes")
	state.Home()
	state.Insert("my-")
	AssertModelField(t, "input", state.GetInput(), "my-notes")
	AssertModelField(t, "cursor", state.GetCursor(), 3)

	state.End()
	state.Insert(".txt")
	AssertModelField(t, "input", state.GetInput(), "my-notes.txt")

	if !state.Backspace() {
		t.Error("Backspace at end should delete")
	}
	AssertModelField(t, "input", state.GetInput(), "my-notes.tx")

	if state.Delete() {
		t.Error("Delete at end should do nothing")
	}

	state.Home()
	if state.Backspace() {
		t.Error("Backspace at start should do nothing")
	}
	if !state.Delete() {
		t.Error("Delete at start should delete")
	}
	AssertModelField(t, "input", state.GetInput(), "y-notes.tx")
}

func TestInputState_MultibyteCursor(t *testing.T) {
	state := NewInputState()
	state.Initialize("café")

	state.MoveLeft()
	AssertModelField(t, "cursor", state.GetCursor(), 3)

	state.Backspace()
	AssertModelField(t, "input", state.GetInput(), "caé")

	state.MoveRight()
	AssertModelField(t, "cursor", state.GetCursor(), len("caé"))

	state.SetCursor(3)
	AssertModelField(t, "cursor (mid-rune)", state.GetCursor(), 2)
}

func TestInputState_Clear(t *testing.T) {
	state := NewInputState()
	state.Initialize("/tmp/notes.txt")
	state.SetCursor(5)

	state.ClearAfter()
	AssertModelField(t, "after ClearAfter", state.GetInput(), "/tmp/")

	state.SetCursor(1)
	state.ClearBefore()
	AssertModelField(t, "after ClearBefore", state.GetInput(), "tmp/")
	AssertModelField(t, "cursor", state.GetCursor(), 0)
}

func TestInputState_SetInputClampsCursor(t *testing.T) {
	state := NewInputState()
	state.Initialize("a long path")
	state.SetInput("ab")

	AssertModelField(t, "cursor", state.GetCursor(), 2)
}

func TestInputState_Render(t *testing.T) {
	state := NewInputState()
	state.Initialize("abc")
	state.MoveLeft()

	AssertModelField(t, "active", state.Render(true), "ab█c")
	AssertModelField(t, "inactive", state.Render(false), "abc")
}
