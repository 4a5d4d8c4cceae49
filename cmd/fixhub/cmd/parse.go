package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/ssargent/fixhub/pkg/fix"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <message>",
	Short: "Parse a FIX message into tag-value fields",
	Long: `Parse a raw FIX message into its tag-value fields.

The delimiter is detected from the message unless --delimiter is given.

Example:
  fixhub parse "8=FIX.4.2|9=123|35=D|55=AAPL|10=085"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		delimiter, err := declaredDelimiter(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		normalized, err := fix.Normalize(args[0], delimiter)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		fields := fix.NewParser().Parse(normalized)
		printFields(cmd, fields)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("delimiter", "d", "", "Field delimiter (single character, detected if omitted)")
}

// declaredDelimiter reads the --delimiter flag; zero means detect.
func declaredDelimiter(cmd *cobra.Command) (byte, error) {
	raw, _ := cmd.Flags().GetString("delimiter")
	switch len(raw) {
	case 0:
		return 0, nil
	case 1:
		return raw[0], nil
	default:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", raw)
	}
}

// printFields writes fields in ascending tag order, with names where known.
func printFields(cmd *cobra.Command, fields fix.ParsedMessage) {
	tags := make([]int, 0, len(fields))
	for tag := range fields {
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	for _, tag := range tags {
		if name, ok := fix.TagName(tag); ok {
			cmd.Printf("%5d %-16s %s\n", tag, name, fields[tag])
		} else {
			cmd.Printf("%5d %-16s %s\n", tag, "-", fields[tag])
		}
	}
}
