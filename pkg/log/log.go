package log

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 TargetEventType represents what happened to one target page
type TargetEventType int

const (
	TargetPatched TargetEventType = iota
	TargetSkipped
	TargetMissing
	TargetError
)

// 🖼️ TargetEvent represents the outcome for one target page
type TargetEvent struct {
	Type        TargetEventType
	Path        string
	Description string
	Error       error
}

// 📢 UserLogger provides user-friendly feedback about the patch run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogTargetEvent logs a per-file outcome line with appropriate prefix
func (u *UserLogger) LogTargetEvent(event TargetEvent) {
	var action string
	var printer *pterm.PrefixPrinter
	switch event.Type {
	case TargetPatched:
		action = "Patched"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case TargetSkipped:
		action = "Skipped"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case TargetMissing:
		action = "Missing"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"})
	case TargetError:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, event.Path)
	if event.Description != "" {
		msg += fmt.Sprintf(" (%s)", event.Description)
	}

	if event.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(event.Error)
		u.log.Error().Err(event.Error).Str("path", event.Path).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Str("path", event.Path).Msg(msg)
	}
}

// 📝 Header prints the run banner
func (u *UserLogger) Header(msg string) {
	title := color.New(color.Bold, color.FgCyan).Sprint("paginate")
	fmt.Printf("\n%s %s\n\n", title, color.New(color.Faint).Sprint("• "+msg))
	u.log.Info().Msg(msg)
}

// 📊 Summary prints the final tally line
func (u *UserLogger) Summary(patched, skipped, errored int) {
	fmt.Printf("\n%s %s, %s, %s\n",
		color.New(color.Bold).Sprint("done:"),
		color.New(color.FgGreen).Sprintf("%d patched", patched),
		color.New(color.FgYellow).Sprintf("%d skipped", skipped),
		color.New(color.FgRed).Sprintf("%d errored", errored))

	u.log.Info().
		Int("patched", patched).
		Int("skipped", skipped).
		Int("errored", errored).
		Msg("run complete")
}

// 📝 Info logs an informational line
func (u *UserLogger) Info(msg string) {
	pterm.Info.Println(msg)
	u.log.Info().Msg(msg)
}

// 📝 Infof logs a formatted informational line
func (u *UserLogger) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}
