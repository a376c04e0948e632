package server

import (
	"github.com/gofiber/fiber/v2"
)

// StaticPrefix is where the content root is served, below the context path.
const StaticPrefix = "/static"

// staticFeature serves the content root directory.
type staticFeature struct {
	root string
}

func (f *staticFeature) Name() string {
	return "static"
}

func (f *staticFeature) IsEnabled() bool {
	return f.root != ""
}

func (f *staticFeature) Load(app fiber.Router) error {
	app.Static(StaticPrefix, f.root, fiber.Static{Browse: false})
	return nil
}
