package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"peerdid/internal/domain"
	"peerdid/internal/logger"
	"peerdid/internal/protocol/peerdid"
)

func createCmd(opts *rootOptions) *cobra.Command {
	var (
		authKeys      int
		agreementKeys int
		endpoint      string
		routingKeys   []string
	)
	cmd := &cobra.Command{
		Use:   "create-peer-did",
		Short: "Generate keys, mint a peer DID and store its secrets",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(cmd *cobra.Command, args []string) error {
			defaults := opts.app.Config.Defaults
			if !cmd.Flags().Changed("auth-keys-count") {
				authKeys = defaults.AuthKeys
			}
			if !cmd.Flags().Changed("agreement-keys-count") {
				agreementKeys = defaults.AgreementKeys
			}

			req := domain.CreateRequest{AuthKeys: authKeys, AgreementKeys: agreementKeys}
			if endpoint != "" {
				req.Service = peerdid.NewDIDCommService(endpoint, routingKeys)
			} else if len(routingKeys) > 0 {
				return fmt.Errorf("--service-routing-keys needs --service-endpoint")
			}

			w, err := opts.app.Wire()
			if err != nil {
				return err
			}
			did, err := w.Identity.CreatePeerDID(req)
			if err != nil {
				return err
			}
			opts.app.Log.Debug("peer DID created",
				logger.DID(did.String()),
				logger.AuthKeys(authKeys),
				logger.AgreementKeys(agreementKeys),
				logger.Secrets(w.SecretsPath),
			)
			fmt.Fprintln(cmd.OutOrStdout(), did)
			return nil
		}),
	}
	cmd.Flags().IntVar(&authKeys, "auth-keys-count", 1, "number of authentication keys")
	cmd.Flags().IntVar(&agreementKeys, "agreement-keys-count", 1, "number of agreement keys")
	cmd.Flags().StringVar(&endpoint, "service-endpoint", "", "optional DIDComm service endpoint")
	cmd.Flags().StringSliceVar(&routingKeys, "service-routing-keys", nil, "optional service routing keys")
	return cmd
}
