package config

const (
	defaultBasisBaseURL     = "http://www.akleg.gov/publicservice/basis/"
	defaultBasisVersion     = "1.4"
	defaultBasisTimeoutSecs = 30
	defaultServerBind       = "127.0.0.1:5027"
	defaultExportDir        = "~/.local/share/gavel/exports"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogDir           = "~/.local/share/gavel/logs"
	basisBaseURLEnv         = "GAVEL_BASIS_URL"
)

// Default returns a Config populated with repository defaults. The encoder
// roster is left empty here and filled during normalize so a configured
// [[encoders]] table replaces rather than extends it.
func Default() Config {
	return Config{
		Basis: Basis{
			BaseURL:        defaultBasisBaseURL,
			Version:        defaultBasisVersion,
			TimeoutSeconds: defaultBasisTimeoutSecs,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Export: Export{
			Dir: defaultExportDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}

func defaultEncoders() []Encoder {
	return []Encoder{
		{Name: "> SRT-KTOOENC01", ID: "hm4mevet"},
		{Name: "> SRT-KTOOENC02", ID: "w7tvhokr"},
		{Name: "> SRT-KTOOENC03", ID: "q2ebqzmb"},
		{Name: "> SRT-KTOOENC04", ID: "fo2axzyw"},
		{Name: "> SRT-KTOOENC05", ID: "uzmbsgc4"},
		{Name: "AK Leg Stream 1", ID: "rnbkqv4t"},
		{Name: "AK Leg Stream 2", ID: "d4ayhbnx"},
		{Name: "AK Leg Stream 3", ID: "l7kmwzbd"},
		{Name: "AK Leg Stream 4", ID: "zrld0xmf"},
		{Name: "AK Leg Stream 5", ID: "yxlm1fas"},
		{Name: "AK Leg Stream 6", ID: "hcrujfx7"},
	}
}
