// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Git: repository URL and branch for the clone step
//   - Launch: target directory and serve-root layout
//   - Server: file server command, port, and readiness poll
//   - Log: logging level and format
//
// Command-line flags override loaded values before the launcher is built.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
