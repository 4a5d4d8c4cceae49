package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/dictionary"
	"github.com/ssargent/fixhub/pkg/fix"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <message>",
	Short: "Validate a FIX message against the message-type catalog",
	Long: `Validate a FIX message: parse it and check that all required tags
for its message type are present.

Example:
  fixhub validate "8=FIX.4.2|35=A|49=A|56=B|34=1|52=20230101-00:00:00.000|98=0|108=30|"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		delimiter, err := declaredDelimiter(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		catalog, err := loadCatalog()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		verdict := checkMessage(args[0], delimiter, catalog)
		cmd.Println(verdict)

		// Trailer integrity, reported only when the message carries a trailer.
		normalized, err := fix.Normalize(args[0], delimiter)
		if err != nil {
			return
		}
		fields := fix.NewParser().Parse(normalized)
		if _, ok := fields[fix.TagBodyLength]; ok {
			if err := fix.VerifyBodyLength(normalized); err != nil {
				cmd.Printf("BodyLength: %v\n", err)
			} else {
				cmd.Println("BodyLength: ok")
			}
		}
		if _, ok := fields[fix.TagCheckSum]; ok {
			if err := fix.VerifyChecksum(normalized); err != nil {
				cmd.Printf("CheckSum: %v\n", err)
			} else {
				cmd.Println("CheckSum: ok")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("delimiter", "d", "", "Field delimiter (single character, detected if omitted)")
}

// loadCatalog returns the configured catalog, or the built-in default when no
// catalog file is configured.
func loadCatalog() (dictionary.Catalog, error) {
	if cfg != nil && cfg.CatalogFile != "" {
		return dictionary.LoadFile(cfg.CatalogFile)
	}
	return dictionary.Default(), nil
}

// checkMessage runs normalize/parse/validate and renders a one-line verdict.
// Shared by the validate command and the interactive check loop.
func checkMessage(message string, delimiter byte, catalog dictionary.Catalog) string {
	normalized, err := fix.Normalize(message, delimiter)
	if err != nil {
		return "INVALID: " + err.Error()
	}

	validator := fix.NewValidator(catalog)
	fields := fix.NewParser().Parse(normalized)
	result := validator.Validate(fields)
	if result.Valid {
		code, _ := fields.MsgType()
		if name, ok := validator.TypeName(code); ok {
			return "VALID: " + name
		}
		return "VALID"
	}

	return "INVALID: " + result.Err.Error()
}
