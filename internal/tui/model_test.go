package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/notepad/internal/session"
)

func TestNew_InitializesDefaultMode(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "width", m.width, 80)
	AssertModelField(t, "height", m.height, 24)
	AssertModelField(t, "title", m.session.Title(), session.AppTitle)
	AssertModelField(t, "dirty", m.session.Dirty(), false)

	if m.actions == nil {
		t.Error("actions should be initialized")
	}
}

func TestNew_RequiresSession(t *testing.T) {
	_, err := New(Options{})
	AssertError(t, err)
}

func TestEditor_TypingAndEditing(t *testing.T) {
	m := CreateTestModel(t)

	TypeText(m, "hello world")
	AssertModelField(t, "text", m.session.Text(), "hello world")
	AssertModelField(t, "dirty", m.session.Dirty(), true)

	PressKey(m, Key(tea.KeyEnter))
	TypeText(m, "second")
	AssertModelField(t, "text", m.session.Text(), "hello world\nsecond")

	PressKey(m, Key(tea.KeyBackspace))
	AssertModelField(t, "text", m.session.Text(), "hello world\nsecon")

	PressKey(m, Key(tea.KeyHome))
	PressKey(m, Key(tea.KeyDelete))
	AssertModelField(t, "text", m.session.Text(), "hello world\necon")

	PressKey(m, Key(tea.KeyUp))
	line, col := m.session.Buffer().LineCol()
	AssertModelField(t, "line", line, 0)
	AssertModelField(t, "col", col, 0)
}

func TestEditor_AltRunesAreNotTyped(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, AltKey('z'))
	AssertModelField(t, "text", m.session.Text(), "")
}

func TestSave_UnsavedDocumentPromptsForPath(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "some notes")

	PressKey(m, Key(tea.KeyCtrlS))
	AssertModelField(t, "mode", m.mode, ModePrompt)
	AssertModelField(t, "promptKind", m.promptKind, promptSaveAs)

	path := filepath.Join(t.TempDir(), "notes")
	TypeText(m, path)
	PressKey(m, Key(tea.KeyEnter))

	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "path", m.session.Path(), path+".txt")
	AssertModelField(t, "dirty", m.session.Dirty(), false)
	AssertModelField(t, "statusMsg", m.statusMsg, "Saved notes.txt")
	AssertModelField(t, "title", m.session.Title(), session.AppTitle+" - "+path+".txt")

	data, err := os.ReadFile(path + ".txt")
	AssertNoError(t, err)
	AssertModelField(t, "file contents", string(data), "some notes")

	// A second save goes straight to the file
	TypeText(m, "!")
	PressKey(m, Key(tea.KeyCtrlS))
	AssertModelField(t, "mode", m.mode, ModeEditor)
	data, err = os.ReadFile(path + ".txt")
	AssertNoError(t, err)
	AssertModelField(t, "file contents", string(data), "some notes!")
}

func TestSaveAs_EmptyPromptCancels(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "draft")

	PressKey(m, AltKey('s'))
	AssertModelField(t, "mode", m.mode, ModePrompt)

	PressKey(m, Key(tea.KeyEnter))
	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "path", m.session.Path(), "")
	AssertModelField(t, "dirty", m.session.Dirty(), true)
}

func TestPrompt_EscapeCancels(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, Key(tea.KeyCtrlO))
	TypeText(m, "/tmp/whatever.txt")
	PressKey(m, Key(tea.KeyEscape))

	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "prompt", m.prompt.GetInput(), "")
	AssertModelField(t, "path", m.session.Path(), "")
}

func TestOpen_LoadsFile(t *testing.T) {
	m := CreateTestModel(t)
	path := filepath.Join(t.TempDir(), "readme.txt")
	if err := os.WriteFile(path, []byte("line one\nline two"), 0644); err != nil {
		t.Fatal(err)
	}

	PressKey(m, Key(tea.KeyCtrlO))
	AssertModelField(t, "mode", m.mode, ModePrompt)
	m.prompt.Initialize(path)
	PressKey(m, Key(tea.KeyEnter))

	AssertModelField(t, "text", m.session.Text(), "line one\nline two")
	AssertModelField(t, "path", m.session.Path(), path)
	AssertModelField(t, "statusMsg", m.statusMsg, "Opened readme.txt")
	AssertModelField(t, "cursor", m.session.Buffer().Cursor(), 0)
}

func TestOpen_MissingFileShowsError(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "keep me")
	path := filepath.Join(t.TempDir(), "missing.txt")

	PressKey(m, Key(tea.KeyCtrlO))
	m.prompt.Initialize(path)
	PressKey(m, Key(tea.KeyEnter))

	AssertModelField(t, "errorMsg", m.errorMsg, "File not found: "+path)
	AssertModelField(t, "text", m.session.Text(), "keep me")

	// The full error is available in the detail modal
	PressKey(m, Key(tea.KeyF2))
	AssertModelField(t, "mode", m.mode, ModeErrorDetail)
	if !strings.Contains(m.View(), "missing.txt") {
		t.Error("error detail should show the path")
	}
	PressKey(m, Key(tea.KeyEscape))
	AssertModelField(t, "mode", m.mode, ModeEditor)
}

func TestErrorDetail_NothingToShow(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, Key(tea.KeyF2))
	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "statusMsg", m.statusMsg, "No errors")
}

func TestNew_ClearsDocument(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "scratch")

	PressKey(m, Key(tea.KeyCtrlN))

	AssertModelField(t, "text", m.session.Text(), "")
	AssertModelField(t, "title", m.session.Title(), session.NewFileTitle)
	AssertModelField(t, "dirty", m.session.Dirty(), false)
}

func TestPrint_RequiresSavedDocument(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "unsaved")

	PressKey(m, Key(tea.KeyCtrlP))

	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "errorMsg", m.errorMsg, "Save the file before printing")
}

func TestPrint_WritesPDF(t *testing.T) {
	m := CreateTestModel(t)
	dir := t.TempDir()
	TypeText(m, "printable")
	AssertNoError(t, m.session.SaveAs(filepath.Join(dir, "doc.txt")))

	PressKey(m, Key(tea.KeyCtrlP))
	AssertModelField(t, "mode", m.mode, ModePrompt)
	AssertModelField(t, "prompt", m.prompt.GetInput(), filepath.Join(dir, "doc.pdf"))

	PressKey(m, Key(tea.KeyEnter))
	AssertModelField(t, "statusMsg", m.statusMsg, "PDF file created successfully")

	data, err := os.ReadFile(filepath.Join(dir, "doc.pdf"))
	AssertNoError(t, err)
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("export should produce a PDF")
	}
}

func TestFindReplace_Panel(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "ab ab ab")

	PressKey(m, Key(tea.KeyCtrlF))
	AssertModelField(t, "mode", m.mode, ModeFindReplace)
	AssertModelField(t, "findField", m.findField, 0)

	TypeText(m, "ab")
	PressKey(m, Key(tea.KeyEnter))
	AssertModelField(t, "highlights", len(m.session.Highlights()), 3)
	AssertModelField(t, "statusMsg", m.statusMsg, "3 matches")
	AssertModelField(t, "cursor", m.session.Buffer().Cursor(), 0)

	PressKey(m, Key(tea.KeyTab))
	AssertModelField(t, "findField", m.findField, 1)
	TypeText(m, "x")

	PressKey(m, Key(tea.KeyCtrlR))
	AssertModelField(t, "text", m.session.Text(), "x x x")
	AssertModelField(t, "statusMsg", m.statusMsg, "Replaced 3 occurrences")
	AssertModelField(t, "highlights", len(m.session.Highlights()), 0)

	PressKey(m, Key(tea.KeyEscape))
	AssertModelField(t, "mode", m.mode, ModeEditor)

	// Reopening keeps the last terms
	PressKey(m, Key(tea.KeyCtrlF))
	AssertModelField(t, "find", m.findInput.GetInput(), "ab")
	AssertModelField(t, "replace", m.replaceInput.GetInput(), "x")
}

func TestFindReplace_NoMatches(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "hello")

	PressKey(m, Key(tea.KeyCtrlF))
	TypeText(m, "zz")
	PressKey(m, Key(tea.KeyEnter))

	AssertModelField(t, "statusMsg", m.statusMsg, `No matches for "zz"`)
	AssertModelField(t, "highlights", len(m.session.Highlights()), 0)
}

func TestFindReplace_EmptyFindIsNoOp(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "hello")

	PressKey(m, Key(tea.KeyCtrlF))
	PressKey(m, Key(tea.KeyCtrlR))

	AssertModelField(t, "text", m.session.Text(), "hello")
	AssertModelField(t, "statusMsg", m.statusMsg, "")
}

func TestClearHighlights(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "aaa")
	m.session.Find("a")

	PressKey(m, Key(tea.KeyEscape))
	AssertModelField(t, "highlights", len(m.session.Highlights()), 0)
}

func TestExit_Confirmation(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "unsaved")

	PressKey(m, Key(tea.KeyCtrlQ))
	AssertModelField(t, "mode", m.mode, ModeConfirmExit)
	if !strings.Contains(m.View(), "Unsaved changes will be lost.") {
		t.Error("exit confirmation should warn about unsaved changes")
	}

	PressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	AssertModelField(t, "mode", m.mode, ModeEditor)
	AssertModelField(t, "text", m.session.Text(), "unsaved")

	PressKey(m, Key(tea.KeyCtrlQ))
	cmd := PressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("confirming exit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirming exit should quit")
	}
	AssertModelField(t, "View", m.View(), "")
}

func TestCtrlC_CopiesInEditorAndQuitsElsewhere(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "copy me")

	PressKey(m, Key(tea.KeyCtrlA))
	cmd := PressKey(m, Key(tea.KeyCtrlC))
	if cmd != nil {
		t.Error("ctrl+c in the editor should not quit")
	}
	AssertModelField(t, "statusMsg", m.statusMsg, "Copied to clipboard")

	got, err := m.clipboard.ReadText()
	AssertNoError(t, err)
	AssertModelField(t, "clipboard", got, "copy me")

	PressKey(m, Key(tea.KeyCtrlO))
	cmd = PressKey(m, Key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c in a prompt should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c in a prompt should quit")
	}
}

func TestClipboard_CutAndPaste(t *testing.T) {
	m := CreateTestModel(t)

	// Empty clipboard: paste silently does nothing
	PressKey(m, Key(tea.KeyCtrlV))
	AssertModelField(t, "text", m.session.Text(), "")
	AssertModelField(t, "errorMsg", m.errorMsg, "")

	TypeText(m, "move")
	PressKey(m, Key(tea.KeyCtrlA))
	PressKey(m, Key(tea.KeyCtrlX))
	AssertModelField(t, "text", m.session.Text(), "")

	PressKey(m, Key(tea.KeyCtrlV))
	PressKey(m, Key(tea.KeyCtrlV))
	AssertModelField(t, "text", m.session.Text(), "movemove")

	// Copy with no selection silently does nothing
	PressKey(m, Key(tea.KeyCtrlC))
	AssertModelField(t, "errorMsg", m.errorMsg, "")
}

func TestPromptPaste_UsesClipboard(t *testing.T) {
	m := CreateTestModel(t)
	AssertNoError(t, m.clipboard.WriteText("/tmp/pasted.txt"))

	PressKey(m, Key(tea.KeyCtrlO))
	PressKey(m, Key(tea.KeyCtrlV))

	AssertModelField(t, "prompt", m.prompt.GetInput(), "/tmp/pasted.txt")
}

func TestSelection_ShiftArrows(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "abcdef")
	PressKey(m, Key(tea.KeyHome))

	PressKey(m, Key(tea.KeyShiftRight))
	PressKey(m, Key(tea.KeyShiftRight))
	AssertModelField(t, "selection", m.session.Buffer().SelectedText(), "ab")

	TypeText(m, "Z")
	AssertModelField(t, "text", m.session.Text(), "Zcdef")
}

func TestView_ToggleDarkMode(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, Key(tea.KeyCtrlT))
	AssertModelField(t, "dark", m.session.Presentation().Dark, true)
	AssertModelField(t, "statusMsg", m.statusMsg, "Dark mode on")

	PressKey(m, Key(tea.KeyCtrlT))
	AssertModelField(t, "dark", m.session.Presentation().Dark, false)
	AssertModelField(t, "statusMsg", m.statusMsg, "Dark mode off")
}

func TestView_FontSizeKeys(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, AltKey('='))
	AssertModelField(t, "font size", m.session.Presentation().FontSize, 14)
	PressKey(m, AltKey('+'))
	AssertModelField(t, "font size", m.session.Presentation().FontSize, 16)

	for range 20 {
		PressKey(m, AltKey('-'))
	}
	AssertModelField(t, "font size", m.session.Presentation().FontSize, session.MinFontSize)
	AssertModelField(t, "statusMsg", m.statusMsg, "Font size 2")
}

func TestView_FontColor(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, AltKey('c'))
	AssertModelField(t, "mode", m.mode, ModePrompt)
	AssertModelField(t, "promptKind", m.promptKind, promptColor)

	m.prompt.Initialize("red")
	PressKey(m, Key(tea.KeyEnter))
	AssertModelField(t, "foreground", m.session.Presentation().TextArea.Foreground, "#ff0000")
	AssertModelField(t, "statusMsg", m.statusMsg, "Font color #ff0000")

	PressKey(m, AltKey('c'))
	m.prompt.Initialize("blurple")
	PressKey(m, Key(tea.KeyEnter))
	AssertModelField(t, "foreground", m.session.Presentation().TextArea.Foreground, "#ff0000")
	AssertModelField(t, "errorMsg", m.errorMsg, "Invalid color - use a name like red or a hex value like #ff8800")
}

func TestHelp_OpenAndClose(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, Key(tea.KeyF1))
	AssertModelField(t, "mode", m.mode, ModeHelp)

	view := m.View()
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("help should show its title")
	}
	if !strings.Contains(view, "FILE") {
		t.Error("help should list the file commands")
	}

	PressKey(m, Key(tea.KeyF1))
	AssertModelField(t, "mode", m.mode, ModeEditor)
}

func TestMessages_TimedClearIgnoresStaleTicks(t *testing.T) {
	m := CreateTestModel(t)

	m.setStatusMessage("first")
	stale := m.statusSeq
	m.setStatusMessage("second")

	m.Update(clearStatusMsg{seq: stale})
	AssertModelField(t, "statusMsg", m.statusMsg, "second")

	m.Update(clearStatusMsg{seq: m.statusSeq})
	AssertModelField(t, "statusMsg", m.statusMsg, "")
}

func TestMessages_TimeoutSchedulesClear(t *testing.T) {
	m := CreateTestModel(t)
	m.settings.MessageTimeout = 3

	if cmd := m.setErrorMessage("boom"); cmd == nil {
		t.Error("a positive timeout should schedule a clear")
	}
	AssertModelField(t, "errorMsg", m.errorMsg, "boom")

	m.Update(clearErrorMsg{seq: m.errorSeq})
	AssertModelField(t, "errorMsg", m.errorMsg, "")
	AssertModelField(t, "fullErrorMsg", m.fullErrorMsg, "boom")
}

func TestMessages_LongMessagesAreTruncated(t *testing.T) {
	m := CreateTestModel(t)

	m.setErrorMessage(strings.Repeat("x", 150))
	AssertModelField(t, "errorMsg length", len(m.errorMsg), MaxFooterMessage)
	AssertModelField(t, "fullErrorMsg length", len(m.fullErrorMsg), 150)
}
