// Package console renders leveled status lines to the user and mirrors them,
// uncolored and timestamped, into a per-run log file.
package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	infoTag    = color.New(color.FgCyan).Sprint("[INFO]")
	successTag = color.New(color.FgGreen).Sprint("[SUCCESS]")
	warnTag    = color.New(color.FgYellow).Sprint("[WARNING]")
	errorTag   = color.New(color.FgRed).Sprint("[ERROR]")
	fileColor  = color.New(color.FgMagenta, color.Bold)
)

// Printer writes status lines to out and, when a log file is attached, appends
// each line to it with a timestamp and plain level tag.
type Printer struct {
	out     io.Writer
	logFile *os.File
	logPath string
}

// New creates a Printer writing to out with no log file attached.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewWithLog creates a Printer that also appends to a fresh log file under
// dir/logs. Log setup is best-effort: on failure the printer still works and
// LogPath returns empty.
func NewWithLog(out io.Writer, dir string) *Printer {
	p := &Printer{out: out}
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return p
	}
	name := fmt.Sprintf("vcaio_%s.log", time.Now().Format("2006-01-02_15-04-05"))
	f, err := os.Create(filepath.Join(logDir, name))
	if err != nil {
		return p
	}
	p.logFile = f
	p.logPath = f.Name()
	return p
}

// Writer exposes the underlying console writer for raw output such as
// carriage-return progress lines that must bypass the line/log machinery.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// LogPath returns the path of the attached log file, or empty when logging is
// disabled.
func (p *Printer) LogPath() string {
	return p.logPath
}

// Close releases the log file. Safe on a printer without one.
func (p *Printer) Close() {
	if p.logFile != nil {
		_ = p.logFile.Close()
	}
}

// Rule prints a section divider with a centered title.
func (p *Printer) Rule(title string) {
	const width = 64
	pad := width - len(title) - 2
	if pad < 2 {
		pad = 2
	}
	left := pad / 2
	right := pad - left
	line := fmt.Sprintf("%s %s %s", strings.Repeat("─", left), title, strings.Repeat("─", right))
	_, _ = fmt.Fprintln(p.out, color.CyanString(line))
	p.log("----", title)
}

// Blank prints an empty line to the console only.
func (p *Printer) Blank() {
	_, _ = fmt.Fprintln(p.out)
}

// Info prints an informational status line.
func (p *Printer) Info(format string, args ...any) {
	p.line(infoTag, "INFO", format, args...)
}

// Success prints a success status line.
func (p *Printer) Success(format string, args ...any) {
	p.line(successTag, "SUCCESS", format, args...)
}

// Warn prints a warning status line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(warnTag, "WARNING", format, args...)
}

// Error prints an error status line.
func (p *Printer) Error(format string, args ...any) {
	p.line(errorTag, "ERROR", format, args...)
}

// File formats a file name for emphasis inside a status line.
func File(name string) string {
	return fileColor.Sprint(name)
}

func (p *Printer) line(tag string, level string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(p.out, "%-10s %s\n", tag, msg)
	p.log(level, msg)
}

func (p *Printer) log(level string, msg string) {
	if p.logFile == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(p.logFile, "%s %-8s %s\n", ts, level, msg)
}
