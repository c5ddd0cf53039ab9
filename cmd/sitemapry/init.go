package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a config file interactively",
	Long: `Create a sitemapry config file interactively.

You will be prompted for:
  - HTTP port
  - Sitemap directory
  - Shared app-proxy secret

The file is written to the given path (default: ./config.yaml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// configFile mirrors the config package's structure for the keys the
// bootstrap writes; everything else keeps its default.
type configFile struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Auth struct {
		Secret struct {
			Value string `yaml:"value,omitempty"`
			Env   string `yaml:"env,omitempty"`
		} `yaml:"secret"`
	} `yaml:"auth"`
}

func runInit(_ *cobra.Command, args []string) error {
	path := "config.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", path),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: "5710",
		Validate: func(input string) error {
			port, convErr := strconv.Atoi(input)
			if convErr != nil || port < 1 || port > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, _ := strconv.Atoi(portStr)

	storagePrompt := promptui.Prompt{
		Label:   "Sitemap directory",
		Default: "./sitemaps",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("sitemap directory is required")
			}
			return nil
		},
	}
	storagePath, err := storagePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	secretPrompt := promptui.Prompt{
		Label: "Shared secret (leave empty to configure later)",
		Mask:  '*',
	}
	secret, err := secretPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	var cf configFile
	cf.Server.Port = port
	cf.Storage.Path = storagePath
	cf.Auth.Secret.Value = secret
	if secret == "" {
		// Point at an env var so the secret never has to land in the file.
		cf.Auth.Secret.Env = "SITEMAPRY_SHARED_SECRET"
	}

	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	if secret == "" {
		fmt.Println("Set SITEMAPRY_SHARED_SECRET before starting the relay.")
	}
	return nil
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
