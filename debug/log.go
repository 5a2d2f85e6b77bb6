package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetOutput redirects debug logs, which go to stderr by default.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// Logf logs a formatted debug message.  Arguments which are raw JSON
// are logged as JSON text rather than as byte slices.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case json.RawMessage:
			args[i] = string(x)
		case map[string]any, []any:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
