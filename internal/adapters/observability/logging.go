package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog Logger: JSON on stdout for
// production, the console writer for dev so local seeded runs stay readable.
func NewLogger(env string) zerolog.Logger {
	var out io.Writer = os.Stdout
	switch env {
	case "dev", "development":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Str("service", "myroomate").Logger()
}
