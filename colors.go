// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI codes for plain terminal output. Empty until InitializeColors runs,
// so output written before that (and in tests) carries no escapes.
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string
)

var detectedMode TerminalMode

// Palette holds the lipgloss colours used by the explorer.
type Palette struct {
	Accent      lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Success     lipgloss.Color
	Failure     lipgloss.Color
	Muted       lipgloss.Color
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects terminal mode and sets the ANSI codes accordingly
func InitializeColors() {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// GetPalette returns explorer colours for the detected terminal mode
func GetPalette() Palette {
	if detectedMode == TerminalModeLight {
		return Palette{
			Accent:      lipgloss.Color("25"),
			Border:      lipgloss.Color("245"),
			BorderFocus: lipgloss.Color("25"),
			Success:     lipgloss.Color("28"),
			Failure:     lipgloss.Color("160"),
			Muted:       lipgloss.Color("240"),
		}
	}
	return Palette{
		Accent:      lipgloss.Color("39"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Success:     lipgloss.Color("46"),
		Failure:     lipgloss.Color("196"),
		Muted:       lipgloss.Color("243"),
	}
}

// yesNo colours a boolean answer for plain terminal output
func yesNo(ok bool) string {
	if ok {
		return Green + "Yes" + Reset
	}
	return Error + "No" + Reset
}
