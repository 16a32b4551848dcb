// Package observability provides structured logging for the library.
//
// The package wraps go.uber.org/zap behind a small Logger interface so
// that callers can inject their own logger or keep the default nop
// logger. The library never logs unless a logger is wired in.
//
// # Example Usage
//
//	logger, err := observability.NewLogger(observability.DefaultLogConfig())
//	if err != nil {
//	    return err
//	}
//	observability.SetGlobalLogger(logger)
//
// # Thread Safety
//
// Loggers returned by NewLogger and NopLogger are safe for concurrent
// use, as is the global logger accessor.
package observability
