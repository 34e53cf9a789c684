// Package debug provides the module's loggers.
//
// When the MINSIZE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, messages at warn level and
// above go to stderr.
package debug
