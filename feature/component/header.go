package component

import (
	"embed-ui/core/ui"

	"go.uber.org/zap"
)

const (
	// HeaderSplitPosition is the height of the development header in pixels.
	HeaderSplitPosition = 20
	// ShutdownCaption is the caption of the header's shutdown button.
	ShutdownCaption = "shutdown"
	// ShutdownDescription is the tooltip of the header's shutdown button.
	ShutdownDescription = "Shutdown the embed server and close this tab"
)

// Stopper stops the server hosting a component.
type Stopper interface {
	Stop() error
}

// NewDevelopmentHeader creates the header with the shutdown button.
//
// The click stops s on a new goroutine: the graceful shutdown waits for
// in-flight requests, including the click itself. Stop failures go to l at
// debug level; a server that stops uncleanly logs its own warning.
func NewDevelopmentHeader(s Stopper, l *zap.Logger) *ui.HorizontalLayout {
	if l == nil {
		l = zap.NewNop()
	}
	shutdown := &ui.Button{
		Caption:     ShutdownCaption,
		Description: ShutdownDescription,
		Style:       ui.ButtonStyleLink,
		OnClick: func(e *ui.Event) {
			if s != nil {
				go func() {
					if err := s.Stop(); err != nil {
						l.Debug("Shutdown from development header failed", zap.Error(err))
					}
				}()
			}
			e.CloseView()
		},
	}
	return ui.NewHorizontalLayout(shutdown)
}
