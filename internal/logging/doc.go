// Package logging configures the process-wide zerolog logger: a human
// console writer on stderr plus a JSON log file under the XDG state
// directory, with the level chosen by the -v count.
package logging
