package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-jsx-lint/pkg/lint"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules",
	Long:  `Prints every built-in rule with its description and option keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(lint.Rules(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for _, rule := range lint.Rules() {
			fmt.Printf("%s\n    %s\n", rule.Name, rule.Description)
			if len(rule.OptionKeys) > 0 {
				fmt.Printf("    options: %s\n", strings.Join(rule.OptionKeys, ", "))
			}
		}
		return nil
	},
}

func init() {
	rulesCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}
