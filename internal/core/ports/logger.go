package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)

	// SetOutput redirects subsequent log output to w.
	SetOutput(w io.Writer)

	// SetVerbose enables or disables debug output.
	SetVerbose(verbose bool)
}
