//go:build windows

package internal

import "fmt"

// Emph emphasises names, ids and values in command output.
var Emph = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Warn marks destructive or failed actions.
var Warn = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// Highlight marks new records.
var Highlight = func(a ...interface{}) string {
	return fmt.Sprint(a...)
}
