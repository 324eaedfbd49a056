package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-skills/internal/skill"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List available skill manifests",
	Long: `Skills lists the skill manifests found in the skills directory. Each
manifest describes one skill: its name, the subcommand that runs it, and
usage examples an assistant can copy.`,
	RunE: runSkills,
}

func init() {
	skillsCmd.Flags().String("dir", "skills", "directory containing skill manifests")
	skillsCmd.Flags().Bool("json", false, "output manifests as JSON")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	dir := flagString(cmd, "dir", "skills.dir")
	manifests, err := skill.Load(dir, os.Stderr)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeResult(manifests, true, true)
	}
	skill.FormatTable(manifests, os.Stdout)
	return nil
}
