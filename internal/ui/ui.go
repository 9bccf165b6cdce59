package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)

	// Emojis with colors
	ShieldEmoji  = "🛡️"
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
)

// SmartSpinner is a spinner with enhanced capabilities
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+ShieldEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

// Start starts the spinner.
func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

// Stop stops the spinner.
func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

// Log updates the spinner suffix with a progress message.
func (s *SmartSpinner) Log(message string) {
	s.spinner.Suffix = " " + ShieldEmoji + " " + message
}

// Success stops the spinner and prints a success message.
func (s *SmartSpinner) Success(message string) {
	s.Stop()
	fmt.Printf("%s %s\n", SuccessEmoji, message)
}

// Error stops the spinner and prints an error message.
func (s *SmartSpinner) Error(message string) {
	s.Stop()
	fmt.Printf("%s %s\n", ErrorEmoji, message)
}
