package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tuisearch/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd, config.NewConfigService(opts.configPath), forceInit)
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func initConfig(cmd *cobra.Command, svc config.ConfigService, force bool) error {
	_, err := svc.LoadFromPath(svc.Path())
	switch {
	case err == nil && !force:
		return fmt.Errorf("%s already exists, use --force to overwrite", svc.Path())
	case err != nil && !errors.Is(err, config.ErrNotFound) && !force:
		return fmt.Errorf("%s exists but can't be read, use --force to overwrite: %w", svc.Path(), err)
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
	return nil
}
