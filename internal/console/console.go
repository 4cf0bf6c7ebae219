// Package console renders the user-facing status lines shared by setup,
// doctor, and new. Each line carries a fixed-width tag so output from
// different checks lines up:
//
//	Vulkan SDK:
//	  [ OK ] VULKAN_SDK=C:/VulkanSDK/1.3.216.0
//	  [WARN] debug libraries not found
package console

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Tag identifies the outcome shown at the start of a status line.
type Tag string

// Status tags.
const (
	TagOK   Tag = "[ OK ]"
	TagWarn Tag = "[WARN]"
	TagFail Tag = "[FAIL]"
	TagMiss Tag = "[MISS]"
	TagSkip Tag = "[SKIP]"
	TagInfo Tag = "[INFO]"
)

func (t Tag) styled() string {
	switch t {
	case TagOK:
		return color.Green.Sprint(string(t))
	case TagWarn, TagMiss:
		return color.Yellow.Sprint(string(t))
	case TagFail:
		return color.Red.Sprint(string(t))
	case TagSkip:
		return color.Gray.Sprint(string(t))
	default:
		return color.Cyan.Sprint(string(t))
	}
}

// SetColor turns ANSI styling on or off for every writer.
func SetColor(enabled bool) {
	color.Enable = enabled
}

// Section prints a heading that groups the status lines below it.
func Section(w io.Writer, title string) {
	fmt.Fprintln(w, color.Bold.Sprint(title+":"))
}

// Status prints one indented, tagged line.
func Status(w io.Writer, tag Tag, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", tag.styled(), fmt.Sprintf(format, args...))
}

// OK prints a success line.
func OK(w io.Writer, format string, args ...any) { Status(w, TagOK, format, args...) }

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) { Status(w, TagWarn, format, args...) }

// Fail prints a failure line.
func Fail(w io.Writer, format string, args ...any) { Status(w, TagFail, format, args...) }

// Miss prints a line for something that is not present.
func Miss(w io.Writer, format string, args ...any) { Status(w, TagMiss, format, args...) }

// Skip prints a line for a step that did not run.
func Skip(w io.Writer, format string, args ...any) { Status(w, TagSkip, format, args...) }

// Info prints an informational line.
func Info(w io.Writer, format string, args ...any) { Status(w, TagInfo, format, args...) }

// Command renders a shell command the user is expected to run.
func Command(cmd string) string {
	return color.Cyan.Sprint(cmd)
}

// Error renders an error message for stderr.
func Error(msg string) string {
	return color.Red.Sprint("error: ") + msg
}
