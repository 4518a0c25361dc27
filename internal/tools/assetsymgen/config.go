package assetsymgen

import (
	"errors"
	"flag"
	"go/token"
	"strings"

	platformcmd "github.com/louisbranch/sgfplayer/internal/platform/cmd"
)

// Config controls one generator run.
//
// Values come from the environment first; flags override them. Package
// defaults to $GOPACKAGE so a bare go:generate directive needs no -package.
type Config struct {
	Manifest string `env:"ASSETSYMGEN_MANIFEST"`
	Out      string `env:"ASSETSYMGEN_OUT" envDefault:"asset_names_gen.go"`
	Package  string `env:"GOPACKAGE"`
	TypeName string `env:"ASSETSYMGEN_TYPE" envDefault:"Name"`
	Reserved string `env:"ASSETSYMGEN_RESERVED"`
	DocOut   string `env:"ASSETSYMGEN_DOC"`
	Check    bool   `env:"ASSETSYMGEN_CHECK"`
	LogLevel string `env:"ASSETSYMGEN_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig loads environment defaults and then parses CLI flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "asset catalog (.xcassets directory or .yaml/.json/.hcl/.txt manifest)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output path for the generated Go file")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "package name of the generated file")
	fs.StringVar(&cfg.TypeName, "type", cfg.TypeName, "name of the generated string type")
	fs.StringVar(&cfg.Reserved, "reserved", cfg.Reserved, "comma-separated identifiers declared elsewhere in the package")
	fs.StringVar(&cfg.DocOut, "doc", cfg.DocOut, "optional output path for a markdown catalog")
	fs.BoolVar(&cfg.Check, "check", cfg.Check, "fail if generated files are out of date instead of writing them")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.New("manifest is required")
	}
	if strings.TrimSpace(c.Out) == "" {
		return errors.New("out is required")
	}
	if !token.IsIdentifier(c.Package) {
		return errors.New("package must be a Go identifier")
	}
	if !token.IsIdentifier(c.TypeName) || !token.IsExported(c.TypeName) {
		return errors.New("type must be an exported Go identifier")
	}
	return nil
}

// reservedNames lists identifiers declared by hand in the target package.
func (c Config) reservedNames() []string {
	names := []string{}
	for _, name := range strings.Split(c.Reserved, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
