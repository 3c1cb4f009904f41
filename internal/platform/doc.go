// Package platform papers over OS differences in file permissions. Extracted
// template files keep their archived mode bits on Unix; on Windows mode changes
// are skipped.
package platform
