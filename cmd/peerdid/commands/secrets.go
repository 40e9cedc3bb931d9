package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"peerdid/internal/crypto"
)

func secretsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Inspect the secrets file",
	}
	cmd.AddCommand(secretsListCmd(opts))
	return cmd
}

func secretsListCmd(opts *rootOptions) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored kid",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(cmd *cobra.Command, args []string) error {
			w, err := opts.app.Wire()
			if err != nil {
				return err
			}
			kids := w.Secrets.ListKIDs()
			if !long {
				for _, kid := range kids {
					fmt.Fprintln(cmd.OutOrStdout(), kid)
				}
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, kid := range kids {
				sec, ok := w.Secrets.FindSecret(kid)
				if !ok {
					continue
				}
				key, err := crypto.ParseJWK([]byte(sec.Material.Value))
				if err != nil {
					return fmt.Errorf("%s: %w", kid, err)
				}
				purpose, pub, err := crypto.PublicFromJWK(key)
				if err != nil {
					return fmt.Errorf("%s: %w", kid, err)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", kid, purpose.Curve(), crypto.Fingerprint(purpose, pub))
			}
			return tw.Flush()
		}),
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "also print curve and public key fingerprint")
	return cmd
}
