package main

import "github.com/fatih/color"

// Shared output styles.
var (
	uiBrand  = color.New(color.FgCyan, color.Bold)
	uiGood   = color.New(color.FgGreen)
	uiBad    = color.New(color.FgRed)
	uiSubtle = color.New(color.Faint)
)
