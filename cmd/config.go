package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvierd/ringdown/internal/adapters/tui"
	"github.com/xvierd/ringdown/internal/config"
	"github.com/xvierd/ringdown/internal/domain"
	"github.com/xvierd/ringdown/internal/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit ringdown preferences",
	Long:  `Interactively configure the default duration, theme mode, and renderer. Palette overrides are edited in the config file directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		palette := currentPalette()

		path := configPath
		if path == "" {
			path, _ = config.GetConfigPath()
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("  Config file:       %s\n", path)
		fmt.Printf("  Default duration:  %s\n", defaultDurationLabel(appConfig))
		fmt.Printf("  Theme mode:        %s\n", themeModeLabel(appConfig.Theme.Mode))
		fmt.Printf("  Renderer:          %s\n", rendererLabel(appConfig.Inline))

		menu := []tui.PickerItem{
			{Label: "Default duration", Desc: "Prefill the timer fields on launch"},
			{Label: "Theme mode", Desc: "Follow the terminal, or force light/dark"},
			{Label: "Renderer", Desc: "Fullscreen ring or compact inline bar"},
		}
		result := tui.RunPicker("What would you like to change?", menu, palette)
		if result.Aborted {
			fmt.Println("  No changes made.")
			return nil
		}

		switch result.Index {
		case 0:
			return editDefaultDuration(palette)
		case 1:
			return editThemeMode(palette)
		case 2:
			return editRenderer(palette)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// currentPalette resolves the palette the config prompts render with, the
// same way the timer itself does at launch.
func currentPalette() theme.Palette {
	detector := theme.NewTerminalDetector()
	mode := theme.InitialMode(themePreference(), detector)
	return theme.NewController(mode, appConfig.Theme.Light, appConfig.Theme.Dark).Palette()
}

func editDefaultDuration(palette theme.Palette) error {
	prompt := fmt.Sprintf("Default duration [%s]:", defaultDurationLabel(appConfig))
	result := tui.RunTextPrompt(prompt, "25m, 90s, 10:00 · 0 starts empty", palette)
	if result.Aborted || result.Value == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	if result.Value == "0" {
		appConfig.DefaultDuration = 0
	} else {
		fields, err := domain.ParseClock(result.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", result.Value, err)
		}
		appConfig.DefaultDuration = config.Duration(time.Duration(fields.TotalSeconds()) * time.Second)
	}

	if err := config.Save(appConfig, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: default duration %s\n", defaultDurationLabel(appConfig))
	return nil
}

func editThemeMode(palette theme.Palette) error {
	items := []tui.PickerItem{
		{Label: "Auto", Desc: "Follow the terminal background"},
		{Label: "Light", Desc: "Always light"},
		{Label: "Dark", Desc: "Always dark"},
	}
	result := tui.RunPicker("Theme mode:", items, palette)
	if result.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}

	appConfig.Theme.Mode = []string{"auto", "light", "dark"}[result.Index]
	if err := config.Save(appConfig, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: theme mode %s\n", themeModeLabel(appConfig.Theme.Mode))
	return nil
}

func editRenderer(palette theme.Palette) error {
	items := []tui.PickerItem{
		{Label: "Fullscreen", Desc: "Ring on the alternate screen"},
		{Label: "Inline", Desc: "Compact bar in the scrollback"},
	}
	result := tui.RunPicker("Renderer:", items, palette)
	if result.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}

	appConfig.Inline = result.Index == 1
	if err := config.Save(appConfig, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: renderer %s\n", rendererLabel(appConfig.Inline))
	return nil
}

// defaultDurationLabel formats the prefill setting for display.
func defaultDurationLabel(cfg *config.Config) string {
	if cfg.DefaultDuration == 0 {
		return "none (start empty)"
	}
	return domain.FormatClock(int(time.Duration(cfg.DefaultDuration).Seconds()))
}

func themeModeLabel(mode string) string {
	switch mode {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	return "auto (follow the terminal)"
}

func rendererLabel(inline bool) string {
	if inline {
		return "inline"
	}
	return "fullscreen"
}
