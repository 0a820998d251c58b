package core

// Logger interface for raytracer progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}
