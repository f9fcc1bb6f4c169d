/*
Package tui implements the notepad's terminal interface using Bubble Tea.

The Model owns one session.Session and renders it as a single text area with
a menu line on top and a status bar at the bottom. Every key press is
matched against the keybinds registry for the active mode and dispatched
through an action table; keys with no binding in the editor are inserted as
text.

Modes:
  - ModeEditor: the text area
  - ModeFindReplace: the Find/Replace panel below the text area
  - ModePrompt: a single-line prompt for a path or a colour
  - ModeConfirmExit: exit confirmation
  - ModeRecent: recent files, filtered with fuzzy matching
  - ModeHelp: key reference built from the registry
  - ModeErrorDetail: the full text of the last error

Font family and size have no on-screen effect in a terminal. They are
session state shown in the status bar.
*/
package tui
