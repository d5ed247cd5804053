package cli

import (
	"fmt"
	"os"

	"github.com/benchkit/benchcat/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig loads the layered configuration and overlays any flags
// that were explicitly set on the command. Flags win over config files,
// matching the env > local > global > defaults priority chain.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("files") {
		cfg.Files, _ = cmd.Flags().GetStringSlice("files")
	}
	applyString(cmd, "format", &cfg.Format)
	applyString(cmd, "outdir", &cfg.OutDir)
	if cmd.Flags().Changed("columns") {
		cfg.Columns, _ = cmd.Flags().GetStringSlice("columns")
	}
	applyInt(cmd, "author-truncation", &cfg.AuthorTruncation)
	applyInt(cmd, "url-timeout", &cfg.URLTimeout)
	applyBool(cmd, "strict", &cfg.Strict)
	applyBool(cmd, "standalone", &cfg.Standalone)
	applyBool(cmd, "with-citation", &cfg.WithCitation)
	applyBool(cmd, "no-ratings", &cfg.NoRatings)
	applyBool(cmd, "required", &cfg.RequiredFieldPass)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	for _, f := range cfg.Files {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("file not found: %s", f)
		}
	}
	return cfg, nil
}

func applyString(cmd *cobra.Command, flag string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetString(flag)
	}
}

func applyInt(cmd *cobra.Command, flag string, dst *int) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetInt(flag)
	}
}

func applyBool(cmd *cobra.Command, flag string, dst *bool) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetBool(flag)
	}
}
