package reconcile

// Config holds the sync settings resolved from file and environment.
type Config struct {
	// Dir is the local emoji directory; the index is written here too.
	Dir string `mapstructure:"dir" default:"./emojis"`
	// GenerateIndex enables writing list.json and emojis.d.ts after a run.
	GenerateIndex bool `mapstructure:"generate_index" default:"true"`
	// Token is the bot credential. Never logged.
	Token string `mapstructure:"token" default:""`
	// Ignore holds base name patterns skipped by the scanner.
	Ignore []string `mapstructure:"ignore" default:"*.json,*.ts"`
}

// Spec returns the run parameters for this configuration.
func (c Config) Spec() Spec {
	return Spec{
		Dir:           c.Dir,
		GenerateIndex: c.GenerateIndex,
		Credential:    c.Token,
	}
}
