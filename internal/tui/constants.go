package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMargin       = 6  // Standard horizontal margin (m.width - 6)
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginSmall = 2  // Small vertical margin (m.height - 2)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)

	// Viewport Padding and Borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Modal Content Calculations
	ModalOverheadLines   = 6 // Title (2) + padding (2) + border (2)
	ModalOverheadMinimal = 4 // Border + title for minimal modals

	// Editor layout
	MenuBarLines     = 1 // Menu line at the top
	StatusBarLines   = 1 // Status line at the bottom
	FindPanelLines   = 3 // Find/Replace panel (border + one row of fields)
	PromptLines      = 1 // Inline path or colour prompt above the status bar
	TabWidth         = 4 // Display width of a tab character
	ScrollMargin     = 2 // Lines kept visible above and below the cursor
	RecentFilesLimit = 10

	// Messages longer than this are truncated in the footer; the full text
	// is available in the error detail modal
	MaxFooterMessage = 100
)
