// Package logging builds the application logger.
//
// kiray owns the terminal while it runs, so logs never go to stdout or
// stderr. New returns a charmbracelet/log logger in logfmt format writing to
// a lumberjack-rotated file (10 MB, 3 backups, 28 days by default). With no
// file configured the logger discards everything.
package logging
