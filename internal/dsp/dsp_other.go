//go:build !amd64

package dsp

// archInit keeps the portable baseline on targets without a tuned
// variant.
func archInit(c *Context, flags CPUFlags) {}
