package content

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"embed-ui/core/config"
	"embed-ui/core/ui"

	"go.uber.org/zap"
)

// ErrUnknownButton is returned for a click on a button that is not rendered.
var ErrUnknownButton = errors.New("content: unknown button")

// ClickResult tells the browser what to do after a click.
type ClickResult struct {
	Close         bool     `json:"close"`
	Reload        bool     `json:"reload"`
	Notifications []string `json:"notifications"`
}

// Service renders an application and dispatches its click events. Rendering
// and listeners are serialized, listeners may change the component tree.
type Service struct {
	mu     sync.Mutex
	app    *ui.Application
	cfg    *config.Config
	index  *ui.Index
	logger *zap.Logger
}

// NewService creates a service for app.
func NewService(app *ui.Application, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		app:    app,
		cfg:    cfg,
		logger: logger,
	}
}

// Application returns the served application.
func (s *Service) Application() *ui.Application {
	return s.app
}

// Page renders the complete HTML page. Button ids are reassigned on every
// render.
func (s *Service) Page(token string, debug bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = ui.NewIndex(s.app)
	data := pageData{
		Title:       s.app.Title,
		Theme:       s.cfg.Theme,
		BasePath:    s.cfg.ContextPath,
		WidgetSet:   s.cfg.WidgetSet,
		Token:       token,
		TokenHeader: tokenHeader,
		Body:        trustedHTML(ui.Render(s.app, s.index)),
	}
	if data.Title == "" {
		data.Title = defaultTitle
	}
	if s.app.Theme != "" {
		data.Theme = s.app.Theme
	}
	if debug {
		data.Debug = s.debugInfo()
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// Click runs the listener of the button with the given id.
func (s *Service) Click(id string) (res *ClickResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		s.index = ui.NewIndex(s.app)
	}
	b, ok := s.index.Button(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownButton, id)
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("click listener of %s panicked: %v", id, r)
		}
	}()

	e := b.Click()
	return &ClickResult{
		Close:         e.ClosesView(),
		Reload:        !e.ClosesView(),
		Notifications: append([]string{}, e.Notifications()...),
	}, nil
}

func (s *Service) debugInfo() []debugEntry {
	return []debugEntry{
		{"url", s.cfg.DeployURL()},
		{"context path", s.cfg.ContextPath},
		{"content root", s.cfg.ContextRootDirectory},
		{"theme", s.cfg.Theme},
		{"widget set", s.cfg.WidgetSet},
		{"production mode", strconv.FormatBool(s.cfg.ProductionMode)},
		{"development header", strconv.FormatBool(s.cfg.DevelopmentHeader)},
		{"buttons", strconv.Itoa(s.index.Len())},
	}
}
