package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-jsx-lint/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize jsxlint configuration interactively",
	Long: `Guides you through setting up jsxlint step by step and writes the
answers to .jsxlint.yaml in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	cfg := config.DefaultConfig()

	configPath := config.ProjectConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		if !overwrite {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// === SECTION 1: Pragma ===
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("JSX pragma override").
				Description("Overrides @jsx comments in every file. Leave empty to honor them.").
				Placeholder("React").
				Value(&cfg.Pragma),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	// === SECTION 2: Literal rules ===
	var allowed string
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Forbid literal text in markup content? (no-literals)").
				Value(&cfg.NoLiterals.Enabled),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	if cfg.NoLiterals.Enabled {
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Also flag string and template literals inside expressions?").
					Value(&cfg.NoLiterals.NoStrings),
				huh.NewConfirm().
					Title("Also flag string literals in attribute values?").
					Value(&cfg.NoLiterals.NoAttributeStrings),
				huh.NewInput().
					Title("Allowed strings (comma-separated, optional)").
					Placeholder("•, –").
					Value(&allowed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
	}
	for _, s := range strings.Split(allowed, ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.NoLiterals.AllowedStrings = append(cfg.NoLiterals.AllowedStrings, s)
		}
	}

	// === SECTION 3: Component rules ===
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Forbid more than one component per file? (no-multi-comp)").
				Value(&cfg.NoMultiComp),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
