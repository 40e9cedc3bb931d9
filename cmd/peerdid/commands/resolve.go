package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"peerdid/internal/domain"
	"peerdid/internal/logger"
)

func resolveCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "resolve-peer-did <did>",
		Short: "Print the DID document of a peer DID",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = opts.app.Config.Defaults.Format
			}
			f, err := domain.ParseMaterialFormat(format)
			if err != nil {
				return err
			}

			doc, err := opts.app.Resolver.Resolve(domain.DID(args[0]), f)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			opts.app.Log.Debug("peer DID resolved", logger.DID(args[0]), logger.Format(string(f)))
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(domain.FormatJWK), "verification material format: jwk, base58 or multibase")
	return cmd
}
