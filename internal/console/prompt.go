package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// readLine prints the prompt and returns the next input line without its
// line ending. Lines have no length limit; a final line without a newline
// is still returned.
func (a *App) readLine(prompt string) (string, error) {
	a.printf("%s", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInput, err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt keeps prompting until the user enters a whole number.
func (a *App) readInt(prompt string) (int64, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		a.logger.Debug("rejected numeric input", slog.String("input", line))
		a.println("Please enter a whole number.")
	}
}
