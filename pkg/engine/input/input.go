package input

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads one command per line
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-at-a-time reading
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its trailing newline. A final line
// without a newline is returned with a nil error; io.EOF follows it.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadIntent reads the next line and maps it to an Intent
func (l *LineReader) ReadIntent() (Intent, error) {
	line, err := l.ReadLine()
	if err != nil {
		return Intent{Action: ActionQuit}, err
	}
	raw := RawInput{
		Device: DeviceTerminal,
		Code:   line,
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}
