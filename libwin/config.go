package libwin

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Title                      string `toml:"title"`
	Width                      int    `toml:"width"`
	Height                     int    `toml:"height"`
	GLMajor                    int    `toml:"gl_major"`
	GLMinor                    int    `toml:"gl_minor"`
	EnableCompatibilityProfile bool   `toml:"enable_compatibility_profile"`
	Samples                    int    `toml:"samples"`
	VSync                      bool   `toml:"vsync"`
	Debug                      bool   `toml:"debug"`
	Assets                     string `toml:"assets"`
	DisableShaderCache         bool   `toml:"disable_shader_cache"`
	ShaderCacheDir             string `toml:"shader_cache_dir"`
	HotReload                  bool   `toml:"hot_reload"`
	GUI                        bool   `toml:"gui"`

	// File is the TOML file the config was overlaid with, if any.
	File string `toml:"-"`
}

func DefaultConfig(title string) Config {
	return Config{
		Title:          title,
		Width:          800,
		Height:         600,
		GLMajor:        3,
		GLMinor:        3,
		VSync:          true,
		Assets:         "assets",
		ShaderCacheDir: ".shadercache",
		GUI:            true,
	}
}

func (cfg *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.File, "config", cfg.File, "TOML file overriding the defaults; flags take precedence")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.IntVar(&cfg.GLMajor, "gl-major", cfg.GLMajor, "requested OpenGL major version")
	fs.IntVar(&cfg.GLMinor, "gl-minor", cfg.GLMinor, "requested OpenGL minor version")
	fs.BoolVar(&cfg.EnableCompatibilityProfile, "enable-compatibility-profile", cfg.EnableCompatibilityProfile, "")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "MSAA samples, 0 disables multisampling")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "request a debug context and log verbosely")
	fs.StringVar(&cfg.Assets, "assets", cfg.Assets, "asset directory")
	fs.BoolVar(&cfg.DisableShaderCache, "disable-shader-cache", cfg.DisableShaderCache, "")
	fs.StringVar(&cfg.ShaderCacheDir, "shader-cache-dir", cfg.ShaderCacheDir, "")
	fs.BoolVar(&cfg.HotReload, "hot-reload", cfg.HotReload, "recompile shaders when their files change")
	fs.BoolVar(&cfg.GUI, "gui", cfg.GUI, "show the debug panel where available")
}

// FileError is a failure to read or decode the file named by -config.
type FileError struct {
	Op   string
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("could not %v config %v: %v", e.Op, e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Parse applies the TOML file named by -config and then the flags in args on
// top of cfg.
func (cfg *Config) Parse(name string, args []string) error {
	return cfg.parse(name, args, os.Stderr)
}

func (cfg *Config) parse(name string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.File == "" {
		return nil
	}

	file := cfg.File
	data, err := os.ReadFile(file)
	if err != nil {
		return &FileError{Op: "read", File: file, Err: err}
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &FileError{Op: "parse", File: file, Err: err}
	}
	cfg.File = file

	// flags win over the file
	return fs.Parse(args)
}

// ParseArgs is Parse for the process arguments. It exits on -help and
// invalid flags like flag.Parse does.
func (cfg *Config) ParseArgs() {
	if code, exit := cfg.parseArgs(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr); exit {
		os.Exit(code)
	}
}

func (cfg *Config) parseArgs(name string, args []string, out io.Writer) (code int, exit bool) {
	err := cfg.parse(name, args, out)
	if err == nil {
		return 0, false
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0, true
	}
	// flag errors were already printed along with the usage
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		fmt.Fprintln(out, err)
	}
	return 2, true
}

func (cfg Config) ShaderPath(example, name string) string {
	return filepath.Join(cfg.Assets, "shaders", example, name)
}

func (cfg Config) TexturePath(name string) string {
	return filepath.Join(cfg.Assets, "textures", name)
}

func (cfg Config) CacheDir() string {
	if cfg.DisableShaderCache {
		return ""
	}
	return cfg.ShaderCacheDir
}
