package cmd

import (
	"strconv"
	"strings"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/fix"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a FIX message from tag-value fields",
	Long: `Build a complete FIX message with BeginString, BodyLength, SendingTime
and CheckSum computed automatically.

Fields are given as repeated --field tag=value flags. --gen-clordid fills
ClOrdID (11) with a generated unique identifier.

Examples:
  fixhub build --type D --field 55=AAPL --field 54=1 --gen-clordid
  fixhub build --type 0 --fix-version FIX.4.2`,
	Run: func(cmd *cobra.Command, args []string) {
		msgType, _ := cmd.Flags().GetString("type")
		rawFields, _ := cmd.Flags().GetStringArray("field")
		genClOrdID, _ := cmd.Flags().GetBool("gen-clordid")

		fields := make(map[int]string, len(rawFields))
		for _, raw := range rawFields {
			key, value, found := strings.Cut(raw, "=")
			if !found {
				cmd.Printf("Error: field %q is not tag=value\n", raw)
				return
			}
			tag, err := strconv.Atoi(key)
			if err != nil || tag <= 0 {
				cmd.Printf("Error: invalid tag %q: tags are positive integers\n", key)
				return
			}
			fields[tag] = value
		}
		if genClOrdID {
			fields[fix.TagClOrdID] = ksuid.New().String()
		}

		builder, err := fix.NewBuilder(cfg.Version)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		msg := builder.Build(msgType, fields)
		parsed := fix.NewParser().Parse(msg)

		cmd.Println(fix.Display(msg, cfg.DisplayDelimiter()))
		cmd.Printf("BodyLength: %s  CheckSum: %s\n", parsed[fix.TagBodyLength], parsed[fix.TagCheckSum])
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("type", "t", "", "Message type code (e.g. D, 8, A)")
	buildCmd.Flags().StringArray("field", nil, "Field as tag=value (repeatable)")
	buildCmd.Flags().Bool("gen-clordid", false, "Generate a unique ClOrdID (tag 11)")
	if err := buildCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}
}
