// Package logging sets up wordlook's slog loggers.
//
// With --debug, JSON logs at debug level go to a size-rotated file under
// ~/.wordlook/logs/ so they never interleave with the interactive prompt.
// Otherwise a text logger writes warnings and errors to stderr.
package logging
