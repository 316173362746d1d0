package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

var styles = map[MessageType]lipgloss.Style{
	DefaultMessage: lipgloss.NewStyle(),
	StatusMessage:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	SuccessMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ErrorMessage:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// DecorateText shows the message types in different colors.
// Colors are dropped automatically when the output is not a terminal.
func DecorateText(s string, msgType MessageType) string {
	style, ok := styles[msgType]
	if !ok {
		return s
	}
	return style.Render(s)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	if d.Hours() < 24.0 {
		remainingMinutes := math.Mod(d.Minutes(), 60)
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dh %dm %.2fs",
			int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
	}
	remainingHours := math.Mod(d.Hours(), 24)
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours()/24), int64(remainingHours),
		int64(remainingMinutes), remainingSeconds)
}
