package main

import "github.com/gosuri/uiprogress"

// startBar starts a progress bar of total steps on ui.Err. The bar is nil
// when off is set; Incr on it must be guarded. stop must always be called.
func startBar(total int, off bool, ui UI) (bar *uiprogress.Bar, stop func()) {
	if off {
		return nil, func() {}
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()

	bar = progress.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return bar, progress.Stop
}
