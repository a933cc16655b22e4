package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/catalog"
)

// ExercisesCmd creates the exercises command
func ExercisesCmd() *cobra.Command {
	var skill string
	var maxMinutes int
	var featured bool

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Browse the guided exercise catalog",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}

			cat := catalog.Builtin()
			if c.CatalogPath != "" {
				cat, err = catalog.LoadFile(c.CatalogPath)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
					os.Exit(1)
				}
			}

			var list []catalog.Exercise
			switch {
			case featured:
				list = cat.Featured()
			case skill != "":
				list = cat.BySkill(catalog.Skill(skill))
			case maxMinutes > 0:
				list = cat.ByMaxDuration(maxMinutes)
			default:
				list = cat.List()
			}

			for _, ex := range list {
				fmt.Printf("%-24s %-22s %2d min  %s\n", ex.ID, ex.Skill, ex.DurationMin, ex.Title)
			}
		},
	}

	cmd.Flags().StringVar(&skill, "skill", "", "filter by skill (e.g. \"Coping Skills\")")
	cmd.Flags().IntVar(&maxMinutes, "max-minutes", 0, "only exercises at most this long")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured exercises")
	return cmd
}
