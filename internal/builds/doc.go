// Package builds embeds the template archives shipped with the binary and the
// ordered table that registers them. Populate is called once at startup.
package builds
