package i

// Logger is the logging surface used by services and infrastructure.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
