package system

import "log"

func logf(tag, format string, args ...any) {
	log.Printf("["+tag+"] "+format, args...)
}
