// Package viz holds the terminal look of brailler: color themes, the
// lipgloss styles derived from them, and large dot renderings of cells.
//
// Themes are plain values. Callers pick one with [GetTheme], build
// [Styles] from it and hand those to whatever renders.
package viz
