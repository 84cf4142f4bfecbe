package gui

import (
	"fyne.io/fyne/v2"
)

type UpdateCallback func()

// RunAsync runs fn off the UI goroutine and applies the callback it returns
// on the UI goroutine.
func RunAsync(fn func() UpdateCallback) {
	go func() {
		updateFn := fn()
		if updateFn != nil {
			RunOnUIThread(updateFn)
		}
	}()
}

func RunOnUIThread(fn UpdateCallback) {
	fyne.Do(fn)
}
