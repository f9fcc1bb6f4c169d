/*
Package keybinds provides customizable keyboard binding management.

Bindings are grouped by context: global, editor, find_replace, prompt,
confirm and modal. A key is looked up in the active context first and then
in global, so a context binding shadows a global one. The editor binds
ctrl+c to copy, which shadows the global force-quit.

User overrides live in keybinds.json in the config directory, one section
per context mapping a key to an action name. Comments are allowed:

	{
	  "version": "1.0",
	  "editor": {
	    // close with ctrl+w instead of ctrl+q
	    "ctrl+w": "exit",
	    "ctrl+q": "noop"
	  }
	}

A file that unbinds Save, Exit or the way out of a panel or prompt is
rejected and the defaults are used.

Printable characters are never bound in the editor context; the editor
inserts them as text.
*/
package keybinds
