package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/MHarnil/dwarkesh-admin/internal"
)

var version = "dev"

func main() {
	var opts internal.Options

	rootCmd := &cobra.Command{
		Use:   "dwarkesh-admin",
		Short: "Terminal back-office for the Dwarkesh real estate backend",
		Long: "dwarkesh-admin manages properties, the property type catalog and\n" +
			"contact submissions of the Dwarkesh backend through a terminal UI.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := internal.NewApp(opts)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
	rootCmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "path to a .env file with configuration overrides")
	rootCmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "backend base URL (overrides DWARKESH_API_BASE_URL)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dwarkesh-admin " + version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
