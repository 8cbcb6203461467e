package config

// fileConfig mirrors Config for hclsimple. Every field is optional so that
// anything left out of the file keeps its default.
type fileConfig struct {
	Version *string       `hcl:"version,optional"`
	Output  *outputBlock  `hcl:"output,block"`
	Logging *loggingBlock `hcl:"logging,block"`
	Server  *serverBlock  `hcl:"server,block"`
}

type outputBlock struct {
	Format  *string `hcl:"format,optional"`
	NoColor *bool   `hcl:"no_color,optional"`
}

type loggingBlock struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

type serverBlock struct {
	Address         *string  `hcl:"address,optional"`
	ReadTimeout     *string  `hcl:"read_timeout,optional"`
	WriteTimeout    *string  `hcl:"write_timeout,optional"`
	ShutdownTimeout *string  `hcl:"shutdown_timeout,optional"`
	AllowedOrigins  []string `hcl:"allowed_origins,optional"`
}

func (f *fileConfig) apply(cfg *Config) {
	setString(&cfg.Version, f.Version)

	if o := f.Output; o != nil {
		setString(&cfg.Output.Format, o.Format)
		setBool(&cfg.Output.NoColor, o.NoColor)
	}

	if l := f.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.Format, l.Format)
		setString(&cfg.Logging.Output, l.Output)
		setBool(&cfg.Logging.Development, l.Development)
	}

	if s := f.Server; s != nil {
		setString(&cfg.Server.Address, s.Address)
		setString(&cfg.Server.ReadTimeout, s.ReadTimeout)
		setString(&cfg.Server.WriteTimeout, s.WriteTimeout)
		setString(&cfg.Server.ShutdownTimeout, s.ShutdownTimeout)
		if s.AllowedOrigins != nil {
			cfg.Server.AllowedOrigins = s.AllowedOrigins
		}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
