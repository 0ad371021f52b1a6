package main

import (
	"log"
	"os"

	"github.com/andrejsstepanovs/storyshape/pkg"
	"github.com/andrejsstepanovs/storyshape/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	config.InitViper()

	rootCmd := &cobra.Command{
		Use:           "storyshape",
		Short:         "Narrative structure analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(pkg.NewCommands()...)

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
