package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty and theme profiles",
	Long:  `Shows the alien grid, speed, obstacle rate and scoring of each difficulty, and the colours of each theme.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

func runProfiles(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulties:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-6s  %-6s  %-6s  %-5s  %-9s  %-6s  %s\n", "Name", "Grid", "Aliens", "Speed", "Spawn", "Alien", "Obstacle")
	fmt.Printf("  %-6s  %-6s  %-6s  %-5s  %-9s  %-6s  %s\n", "----", "----", "------", "-----", "-----", "-----", "--------")

	for _, d := range config.Difficulties {
		p := config.ProfileFor(d)
		fmt.Printf("  %-6s  %-6s  %-6d  %-5s  %-9s  %-6d  %d\n",
			d,
			fmt.Sprintf("%dx%d", p.AlienRows, p.AlienCols),
			p.AlienCount(),
			fmt.Sprintf("x%.1f", p.AlienSpeedMultiplier),
			fmt.Sprintf("%d ticks", p.ObstacleSpawnRate),
			p.AlienPoints(),
			p.ObstaclePoints(),
		)
	}

	fmt.Println()
	fmt.Println("Themes:")
	fmt.Println()

	fmt.Printf("  %-7s  %-11s  %-11s  %-11s  %-12s  %-11s  %s\n", "Name", "Background", "Player", "Enemy", "Bullet", "Text", "Accent")
	fmt.Printf("  %-7s  %-11s  %-11s  %-11s  %-12s  %-11s  %s\n", "----", "----------", "------", "-----", "------", "----", "------")

	for _, t := range config.Themes {
		p := config.PaletteFor(t)
		fmt.Printf("  %-7s  %-11s  %-11s  %-11s  %-12s  %-11s  %s\n",
			t, p.Background, p.Player, p.Enemy, p.Bullet, p.Text, p.Accent)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play --difficulty <name> --theme <name>' to start with a profile.")
}
