package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Interactively validate FIX messages from stdin",
	Long: `Read FIX messages from standard input, one per line, and print a
validation verdict for each. Type "quit" or "exit" (or send EOF) to stop.

Example:
  fixhub check < messages.txt`,
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

		cmd.Println("Enter FIX messages, one per line (quit to exit):")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			cmd.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				break
			}
			cmd.Println(checkMessage(line, delimiter, catalog))
		}
		if err := scanner.Err(); err != nil {
			cmd.Printf("Error reading input: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("delimiter", "d", "", "Field delimiter (single character, detected if omitted)")
}
