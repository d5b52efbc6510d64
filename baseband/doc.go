// Package baseband implements the controller/baseband shim: an
// 8-row, OCF-indexed dispatch table and the handler functions it
// names, which together are also the sole source of the
// supported-commands bitmap reported to the host.
package baseband
