package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal      Context = "global"       // Available everywhere
	ContextEditor      Context = "editor"       // Main text area
	ContextFindReplace Context = "find_replace" // Find/Replace panel
	ContextPrompt      Context = "prompt"       // Single-line path and colour prompts
	ContextConfirm     Context = "confirm"      // Confirmation dialogs
	ContextModal       Context = "modal"        // Help, recent files and error detail
)

const (
	// Global actions
	ActionQuitForce Action = "quit_force" // Quit without confirmation (ctrl+c outside the editor)

	// File menu
	ActionNew    Action = "new"     // Clear the buffer and detach the file
	ActionOpen   Action = "open"    // Open a file
	ActionSave   Action = "save"    // Save to the associated file
	ActionSaveAs Action = "save_as" // Save to a new path
	ActionPrint  Action = "print"   // Export to PDF
	ActionExit   Action = "exit"    // Exit (asks for confirmation)

	// View and edit menus
	ActionToggleDarkMode Action = "toggle_dark_mode" // Switch light/dark colours
	ActionFindReplace    Action = "find_replace"     // Open the Find/Replace panel
	ActionOpenRecent     Action = "open_recent"      // Open the recent files list
	ActionOpenHelp       Action = "open_help"        // Open the key reference
	ActionOpenError      Action = "open_error"       // Show the full text of the last error

	// Toolbar
	ActionCopy         Action = "copy"          // Copy selection
	ActionCut          Action = "cut"           // Cut selection
	ActionPaste        Action = "paste"         // Paste at cursor
	ActionSelectAll    Action = "select_all"    // Select the whole buffer
	ActionFontIncrease Action = "font_increase" // A+
	ActionFontDecrease Action = "font_decrease" // A-
	ActionFontColor    Action = "font_color"    // Change font colour

	// Cursor movement
	ActionMoveUp          Action = "move_up"
	ActionMoveDown        Action = "move_down"
	ActionMoveLeft        Action = "move_left"
	ActionMoveRight       Action = "move_right"
	ActionMoveHome        Action = "move_home"
	ActionMoveEnd         Action = "move_end"
	ActionSelectUp        Action = "select_up"
	ActionSelectDown      Action = "select_down"
	ActionSelectLeft      Action = "select_left"
	ActionSelectRight     Action = "select_right"
	ActionSelectHome      Action = "select_home"
	ActionSelectEnd       Action = "select_end"
	ActionPageUp          Action = "page_up"
	ActionPageDown        Action = "page_down"
	ActionGoToTop         Action = "go_to_top"
	ActionGoToBottom      Action = "go_to_bottom"
	ActionClearHighlights Action = "clear_highlights" // Drop highlights and selection

	// Editing
	ActionBackspace Action = "backspace"
	ActionDelete    Action = "delete"
	ActionNewline   Action = "newline"
	ActionTab       Action = "tab"

	// Find/Replace panel
	ActionFind        Action = "find"         // Highlight every match
	ActionReplaceAll  Action = "replace_all"  // Replace every match
	ActionSwitchField Action = "switch_field" // Move between Find and Replace fields

	// Text input actions (prompts and panel fields)
	ActionTextBackspace   Action = "text_backspace"
	ActionTextDelete      Action = "text_delete"
	ActionTextMoveLeft    Action = "text_move_left"
	ActionTextMoveRight   Action = "text_move_right"
	ActionTextMoveHome    Action = "text_move_home"
	ActionTextMoveEnd     Action = "text_move_end"
	ActionTextPaste       Action = "text_paste"
	ActionTextClearBefore Action = "text_clear_before"
	ActionTextClearAfter  Action = "text_clear_after"
	ActionTextSubmit      Action = "text_submit"
	ActionTextCancel      Action = "text_cancel"

	// Modal actions
	ActionCloseModal   Action = "close_modal"
	ActionNavigateUp   Action = "navigate_up"
	ActionNavigateDown Action = "navigate_down"
	ActionSelect       Action = "select"  // Pick the highlighted entry
	ActionForget       Action = "forget"  // Remove an entry from the recent list
	ActionConfirm      Action = "confirm" // Confirm action (y/Y)
	ActionCancel       Action = "cancel"  // Cancel action (n/N)

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionNew:             {ActionNew, "New file", "File"},
	ActionOpen:            {ActionOpen, "Open file", "File"},
	ActionSave:            {ActionSave, "Save", "File"},
	ActionSaveAs:          {ActionSaveAs, "Save as", "File"},
	ActionPrint:           {ActionPrint, "Print to PDF", "File"},
	ActionOpenRecent:      {ActionOpenRecent, "Recent files", "File"},
	ActionExit:            {ActionExit, "Exit", "File"},
	ActionToggleDarkMode:  {ActionToggleDarkMode, "Toggle dark mode", "View"},
	ActionFontIncrease:    {ActionFontIncrease, "Font size +2 (A+)", "View"},
	ActionFontDecrease:    {ActionFontDecrease, "Font size -2 (A-)", "View"},
	ActionFontColor:       {ActionFontColor, "Change font color", "View"},
	ActionFindReplace:     {ActionFindReplace, "Find and replace", "Edit"},
	ActionCopy:            {ActionCopy, "Copy", "Edit"},
	ActionCut:             {ActionCut, "Cut", "Edit"},
	ActionPaste:           {ActionPaste, "Paste", "Edit"},
	ActionSelectAll:       {ActionSelectAll, "Select all", "Edit"},
	ActionClearHighlights: {ActionClearHighlights, "Clear highlights", "Edit"},
	ActionOpenHelp:        {ActionOpenHelp, "Help", "Information"},
	ActionOpenError:       {ActionOpenError, "Show last error", "Information"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionFind:            {ActionFind, "Find (highlight all)", "Find/Replace"},
	ActionReplaceAll:      {ActionReplaceAll, "Replace all", "Find/Replace"},
	ActionSwitchField:     {ActionSwitchField, "Switch field", "Find/Replace"},
	ActionCloseModal:      {ActionCloseModal, "Close", "Find/Replace"},
	ActionMoveUp:          {ActionMoveUp, "Cursor up", "Cursor"},
	ActionMoveDown:        {ActionMoveDown, "Cursor down", "Cursor"},
	ActionMoveHome:        {ActionMoveHome, "Start of line", "Cursor"},
	ActionMoveEnd:         {ActionMoveEnd, "End of line", "Cursor"},
	ActionPageUp:          {ActionPageUp, "Page up", "Cursor"},
	ActionPageDown:        {ActionPageDown, "Page down", "Cursor"},
	ActionGoToTop:         {ActionGoToTop, "Start of document", "Cursor"},
	ActionGoToBottom:      {ActionGoToBottom, "End of document", "Cursor"},
	ActionSelectUp:        {ActionSelectUp, "Extend selection up", "Selection"},
	ActionSelectDown:      {ActionSelectDown, "Extend selection down", "Selection"},
	ActionSelectLeft:      {ActionSelectLeft, "Extend selection left", "Selection"},
	ActionSelectRight:     {ActionSelectRight, "Extend selection right", "Selection"},
	ActionSelectHome:      {ActionSelectHome, "Select to start of line", "Selection"},
	ActionSelectEnd:       {ActionSelectEnd, "Select to end of line", "Selection"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// MenuActions lists the actions shown in the help modal, in menu order
func MenuActions() []Action {
	return []Action{
		ActionNew, ActionOpen, ActionSave, ActionSaveAs, ActionPrint, ActionOpenRecent, ActionExit,
		ActionFindReplace, ActionCopy, ActionCut, ActionPaste, ActionSelectAll, ActionClearHighlights,
		ActionToggleDarkMode, ActionFontIncrease, ActionFontDecrease, ActionFontColor,
		ActionOpenHelp, ActionOpenError,
	}
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	return action == ActionQuitForce
}

var knownActions = func() map[Action]bool {
	all := []Action{
		ActionQuitForce, ActionNew, ActionOpen, ActionSave, ActionSaveAs, ActionPrint, ActionExit,
		ActionToggleDarkMode, ActionFindReplace, ActionOpenRecent, ActionOpenHelp, ActionOpenError,
		ActionCopy, ActionCut, ActionPaste, ActionSelectAll, ActionFontIncrease, ActionFontDecrease, ActionFontColor,
		ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight, ActionMoveHome, ActionMoveEnd,
		ActionSelectUp, ActionSelectDown, ActionSelectLeft, ActionSelectRight, ActionSelectHome, ActionSelectEnd,
		ActionPageUp, ActionPageDown, ActionGoToTop, ActionGoToBottom, ActionClearHighlights,
		ActionBackspace, ActionDelete, ActionNewline, ActionTab,
		ActionFind, ActionReplaceAll, ActionSwitchField,
		ActionTextBackspace, ActionTextDelete, ActionTextMoveLeft, ActionTextMoveRight, ActionTextMoveHome,
		ActionTextMoveEnd, ActionTextPaste, ActionTextClearBefore, ActionTextClearAfter, ActionTextSubmit, ActionTextCancel,
		ActionCloseModal, ActionNavigateUp, ActionNavigateDown, ActionSelect, ActionForget, ActionConfirm, ActionCancel,
		ActionNoOp,
	}
	m := make(map[Action]bool, len(all))
	for _, a := range all {
		m[a] = true
	}
	return m
}()

// IsKnownAction reports whether the action is handled by the editor
func IsKnownAction(action Action) bool {
	return knownActions[action]
}
