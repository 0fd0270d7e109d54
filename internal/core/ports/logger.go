package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogConfigurer adjusts a logger once the command line is parsed.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetDebug(enable bool)
}
