/*
Package types defines core data structures shared across notepad packages.

# Overview

The types package provides shared type definitions for:
  - Text spans located by find
  - Colour pairs used by the light and dark themes
  - Document history records and recent files

# Spans

Span is a half-open byte range [Start, End) into the buffer. Spans produced
by a single search never overlap and are ordered by Start.

# Themes

ColorPair couples a background and a foreground colour. Colours are stored
as the strings the user or the theme supplied ("white", "#1e1e1e"); the
presentation layer turns them into terminal colours.

# History

HistoryEntry records a single document event (open, save, save as, export)
with its timestamp. The recent-files list is derived from these records.
*/
package types
