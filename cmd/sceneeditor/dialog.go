package main

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/raytrace-demo/internal/logger"
)

// openModelDialog shows a native file dialog without blocking the UI.
// SDL and Cocoa calls must stay on the main thread, so the chosen path is
// handed back through ed.opened.
func (ed *Editor) openModelDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("OFF Models", "off").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Error("file dialog error", zap.Error(err))
			}
			return
		}

		select {
		case ed.opened <- filename:
		default:
			logger.Warn("model already pending, ignoring selection", zap.String("path", filename))
		}
	}()
}

// openPending loads a model picked since the last frame.
func (ed *Editor) openPending() {
	select {
	case path := <-ed.opened:
		ed.loadModel(path)
	default:
	}
}
