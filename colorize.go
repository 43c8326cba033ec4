package posets

import "github.com/fatih/color"

var colorize = struct {
	Structure func(...interface{}) string
	Element   func(...interface{}) string
	Attr      func(...interface{}) string
}{
	Structure: color.New(color.FgHiBlue).SprintFunc(),
	Element:   color.New(color.FgCyan).SprintFunc(),
	Attr:      color.New(color.FgYellow).SprintFunc(),
}
