//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package log

func isTerminal(fd uintptr) bool {
	return false
}
