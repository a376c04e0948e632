package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"embed-ui/core/logger"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

const (
	// DefaultLocation is the optional property file read by Load, relative to
	// the working directory.
	DefaultLocation = "embed-vaadin.properties"
	// EnvPrefix prefixes environment overrides (e.g. EMBED_SERVER_PORT).
	EnvPrefix = "EMBED"

	maxPort = 65535
)

// propertySet mirrors the property keys. Defaults come from the struct tags.
type propertySet struct {
	Server      serverProperties      `mapstructure:"server"`
	Context     contextProperties     `mapstructure:"context"`
	Vaadin      toolkitProperties     `mapstructure:"vaadin"`
	Development developmentProperties `mapstructure:"development"`
	Open        openProperties        `mapstructure:"open"`
	Browser     browserProperties     `mapstructure:"browser"`
	Log         logger.Config         `mapstructure:"log"`
}

type serverProperties struct {
	Port  int  `mapstructure:"port" default:"0"`
	Await bool `mapstructure:"await" default:"true"`
}

type contextProperties struct {
	Path    string `mapstructure:"path" default:""`
	RootDir string `mapstructure:"rootDir" default:""`
}

type toolkitProperties struct {
	WidgetSet      string `mapstructure:"widgetSet" default:""`
	ProductionMode bool   `mapstructure:"productionMode" default:"false"`
	Theme          string `mapstructure:"theme" default:"reindeer"`
}

type developmentProperties struct {
	Header bool `mapstructure:"header" default:"false"`
}

type openProperties struct {
	Browser bool `mapstructure:"browser" default:"false"`
}

type browserProperties struct {
	CustomURL string `mapstructure:"customUrl" default:""`
}

// Default returns a configuration made of defaults only.
func Default() (*Config, error) {
	return build(nil, false)
}

// FromProperties builds a configuration from an explicit property map layered
// over the defaults. The environment is not consulted.
func FromProperties(props map[string]string) (*Config, error) {
	return build(props, false)
}

// Load reads DefaultLocation when it exists, then applies EMBED_* environment
// overrides. A missing default file is not an error.
func Load() (*Config, error) {
	props, err := ReadProperties(DefaultLocation, false)
	if err != nil {
		return nil, err
	}
	return build(props, true)
}

// LoadFile reads the given property file, then applies EMBED_* environment
// overrides. The file must exist.
func LoadFile(path string) (*Config, error) {
	props, err := ReadProperties(path, true)
	if err != nil {
		return nil, err
	}
	return build(props, true)
}

// LoadEnvFile loads a .env file into the process environment, overriding
// existing variables. A missing file is ignored.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		return &ConfigurationError{Key: path, Message: "cannot load env file", Err: err}
	}
	return nil
}

// ReadProperties parses a property file into a flat key/value map.
func ReadProperties(path string, failIfNotFound bool) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !failIfNotFound {
			return map[string]string{}, nil
		}
		return nil, &ConfigurationError{Key: path, Message: "property file not found", Err: err}
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, &ConfigurationError{Key: path, Message: "cannot read property file", Err: err}
	}
	return p.Map(), nil
}

// CheckDirectory verifies that path exists and is a directory.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "stat", Path: path, Err: errors.New("not a directory")}
	}
	return nil
}

func build(props map[string]string, withEnv bool) (*Config, error) {
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, propertySet{}, "")

	if withEnv {
		// Map environment variables to nested keys (e.g. EMBED_SERVER_PORT -> server.port)
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := v.MergeConfigMap(nest(props)); err != nil {
		return nil, &ConfigurationError{Message: "cannot merge properties", Err: err}
	}

	var p propertySet
	if err := v.Unmarshal(&p); err != nil {
		return nil, &ConfigurationError{Message: "malformed property value", Err: err}
	}

	return p.toConfig()
}

func (p propertySet) toConfig() (*Config, error) {
	if p.Server.Port < 0 || p.Server.Port > maxPort {
		return nil, &ConfigurationError{Key: "server.port", Message: "port out of range"}
	}

	root := p.Context.RootDir
	if root == "" {
		dir, err := os.MkdirTemp("", "embed-ui-")
		if err != nil {
			return nil, &ConfigurationError{Key: "context.rootDir", Message: "cannot create temporary content root", Err: err}
		}
		root = dir
	}
	if err := CheckDirectory(root); err != nil {
		return nil, &ConfigurationError{Key: "context.rootDir", Message: "content root must be an existing directory", Err: err}
	}

	theme := p.Vaadin.Theme
	if strings.TrimSpace(theme) == "" {
		theme = DefaultTheme
	}

	return &Config{
		Port:                 p.Server.Port,
		ContextPath:          NormalizeContextPath(p.Context.Path),
		ContextRootDirectory: root,
		Wait:                 p.Server.Await,
		WidgetSet:            p.Vaadin.WidgetSet,
		ProductionMode:       p.Vaadin.ProductionMode,
		Theme:                theme,
		DevelopmentHeader:    p.Development.Header,
		OpenBrowser:          p.Open.Browser,
		CustomBrowserURL:     p.Browser.CustomURL,
		Log:                  p.Log,
	}, nil
}

// nest turns dotted keys into the nested maps viper expects.
func nest(props map[string]string) map[string]any {
	out := make(map[string]any)
	for key, value := range props {
		parts := strings.Split(key, ".")
		m := out
		for _, part := range parts[:len(parts)-1] {
			next, ok := m[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				m[part] = next
			}
			m = next
		}
		m[parts[len(parts)-1]] = value
	}
	return out
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
