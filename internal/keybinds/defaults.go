package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerTextInputBindings(r, ContextPrompt)
	registerTextInputBindings(r, ContextFindReplace)
	registerFindReplaceBindings(r)
	registerModalBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerEditorBindings sets up the menu, toolbar and cursor keys of the text area.
// Printable characters are not bound; the editor inserts them directly.
func registerEditorBindings(r *Registry) {
	// File menu
	r.Register(ContextEditor, "ctrl+n", ActionNew)
	r.Register(ContextEditor, "ctrl+o", ActionOpen)
	r.Register(ContextEditor, "ctrl+s", ActionSave)
	r.Register(ContextEditor, "alt+s", ActionSaveAs)
	r.Register(ContextEditor, "ctrl+p", ActionPrint)
	r.Register(ContextEditor, "ctrl+r", ActionOpenRecent)
	r.Register(ContextEditor, "ctrl+q", ActionExit)

	// View and edit menus
	r.Register(ContextEditor, "ctrl+t", ActionToggleDarkMode)
	r.Register(ContextEditor, "ctrl+f", ActionFindReplace)
	r.Register(ContextEditor, "f1", ActionOpenHelp)
	r.Register(ContextEditor, "f2", ActionOpenError)

	// Toolbar. ctrl+c copies inside the editor and force-quits elsewhere.
	r.Register(ContextEditor, "ctrl+c", ActionCopy)
	r.Register(ContextEditor, "ctrl+x", ActionCut)
	r.Register(ContextEditor, "ctrl+v", ActionPaste)
	r.Register(ContextEditor, "ctrl+a", ActionSelectAll)
	r.RegisterMultiple(ContextEditor, []string{"alt+=", "alt++"}, ActionFontIncrease)
	r.Register(ContextEditor, "alt+-", ActionFontDecrease)
	r.Register(ContextEditor, "alt+c", ActionFontColor)

	// Cursor
	r.Register(ContextEditor, "up", ActionMoveUp)
	r.Register(ContextEditor, "down", ActionMoveDown)
	r.Register(ContextEditor, "left", ActionMoveLeft)
	r.Register(ContextEditor, "right", ActionMoveRight)
	r.Register(ContextEditor, "home", ActionMoveHome)
	r.Register(ContextEditor, "end", ActionMoveEnd)
	r.Register(ContextEditor, "shift+up", ActionSelectUp)
	r.Register(ContextEditor, "shift+down", ActionSelectDown)
	r.Register(ContextEditor, "shift+left", ActionSelectLeft)
	r.Register(ContextEditor, "shift+right", ActionSelectRight)
	r.Register(ContextEditor, "shift+home", ActionSelectHome)
	r.Register(ContextEditor, "shift+end", ActionSelectEnd)
	r.Register(ContextEditor, "pgup", ActionPageUp)
	r.Register(ContextEditor, "pgdown", ActionPageDown)
	r.Register(ContextEditor, "ctrl+home", ActionGoToTop)
	r.Register(ContextEditor, "ctrl+end", ActionGoToBottom)
	r.Register(ContextEditor, "esc", ActionClearHighlights)

	// Editing
	r.Register(ContextEditor, "backspace", ActionBackspace)
	r.Register(ContextEditor, "delete", ActionDelete)
	r.Register(ContextEditor, "enter", ActionNewline)
	r.Register(ContextEditor, "tab", ActionTab)
}

// registerTextInputBindings sets up common single-line input bindings
func registerTextInputBindings(r *Registry, context Context) {
	r.Register(context, "backspace", ActionTextBackspace)
	r.Register(context, "delete", ActionTextDelete)
	r.Register(context, "left", ActionTextMoveLeft)
	r.Register(context, "right", ActionTextMoveRight)
	r.RegisterMultiple(context, []string{"home", "ctrl+a"}, ActionTextMoveHome)
	r.RegisterMultiple(context, []string{"end", "ctrl+e"}, ActionTextMoveEnd)
	r.RegisterMultiple(context, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
	r.Register(context, "ctrl+u", ActionTextClearBefore)
	r.Register(context, "ctrl+k", ActionTextClearAfter)
	r.Register(context, "enter", ActionTextSubmit)
	r.Register(context, "esc", ActionTextCancel)
}

// registerFindReplaceBindings overrides the text input bindings for the panel
func registerFindReplaceBindings(r *Registry) {
	r.Register(ContextFindReplace, "enter", ActionFind)
	r.Register(ContextFindReplace, "ctrl+r", ActionReplaceAll)
	r.RegisterMultiple(ContextFindReplace, []string{"tab", "shift+tab", "up", "down"}, ActionSwitchField)
	r.RegisterMultiple(ContextFindReplace, []string{"esc", "ctrl+f"}, ActionCloseModal)
}

// registerModalBindings sets up help, recent files and error detail bindings.
// Letters are left unbound so the recent files filter can receive them.
func registerModalBindings(r *Registry) {
	r.RegisterMultiple(ContextModal, []string{"esc", "f1"}, ActionCloseModal)
	r.RegisterMultiple(ContextModal, []string{"up", "ctrl+p"}, ActionNavigateUp)
	r.RegisterMultiple(ContextModal, []string{"down", "ctrl+n"}, ActionNavigateDown)
	r.Register(ContextModal, "pgup", ActionPageUp)
	r.Register(ContextModal, "pgdown", ActionPageDown)
	r.Register(ContextModal, "enter", ActionSelect)
	r.Register(ContextModal, "ctrl+d", ActionForget)
}

// registerConfirmBindings sets up keybindings for confirmation dialogs
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}
