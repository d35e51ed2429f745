//go:build !windows

package internal

import "github.com/fatih/color"

// Emph emphasises names, ids and values in command output.
var Emph = color.New(color.FgBlue, color.Bold).SprintFunc()

// Warn marks destructive or failed actions.
var Warn = color.New(color.FgYellow, color.Bold).SprintFunc()

// Highlight marks new records.
var Highlight = color.New(color.FgGreen, color.Bold).SprintFunc()
