// Package errutil contains small helpers for simplifying error handling.
package errutil

import "io"

// Close closes c and, if err is not already set, assigns the close error
// to it. Meant to be deferred so a handle is always released:
//
//	defer errutil.Close(f, &err)
func Close(c io.Closer, err *error) {
	if e := c.Close(); *err == nil && e != nil {
		*err = e
	}
}
