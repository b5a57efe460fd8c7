package cmd

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/media"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("error", "e", false, "Print the schema of error responses instead")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the video info response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := &jsonschema.Reflector{
			DoNotReference: true,
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("error")) {
			schema = reflector.Reflect(&apperr.Payload{})
		} else {
			schema = reflector.Reflect(&media.Info{})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(schema)
	},
}
