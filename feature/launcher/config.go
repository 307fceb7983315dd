package launcher

// Config holds configuration for the launch target directory layout.
type Config struct {
	// Dir is the local directory the repository is cloned into.
	Dir string `mapstructure:"dir" default:"DJ-app-clone"`
	// ServeRoot is the subdirectory within Dir whose contents are served.
	ServeRoot string `mapstructure:"serve_root" default:"src"`
}
