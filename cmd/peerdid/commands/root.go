package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"peerdid/internal/app"
	"peerdid/internal/logger"
)

type rootOptions struct {
	configPath string
	envFile    string
	secrets    string
	passphrase string
	logLevel   string

	app *app.App
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call returns independent state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "peerdid",
		Short:        "Create and resolve peer DIDs and keep their secrets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	root.SetGlobalNormalizationFunc(underscoreToDash)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load if present")
	pf.StringVar(&opts.secrets, "secrets", "", "secrets file (default secrets.json)")
	pf.StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase sealing the secrets file")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(createCmd(opts), resolveCmd(opts), secretsCmd(opts))
	return root
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}

	cfg, err := app.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.secrets != "" {
		cfg.Secrets.File = o.secrets
	}
	if o.passphrase != "" {
		cfg.Secrets.Passphrase = o.passphrase
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	log := logger.New(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level, Output: cmd.ErrOrStderr()})
	o.app = app.New(cfg, log.Named(cmd.Name()))
	return nil
}

// run wraps a command body so the app is closed and failures are logged
// whether or not the body returns an error.
func (o *rootOptions) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err != nil {
				o.app.Log.Debug("command failed", logger.Err(err))
			}
			o.app.Close()
		}()
		return fn(cmd, args)
	}
}

func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
