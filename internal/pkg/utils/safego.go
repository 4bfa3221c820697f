package utils

import (
	"runtime/debug"

	"circles/internal/pkg/log"
)

func SafeGo(f func()) {
	go func() {
		defer func() {
			if e := recover(); e != nil {
				log.Errorf("panic: %+v, Stack: %v", e, string(debug.Stack()))
			}
		}()
		f()
	}()
}
