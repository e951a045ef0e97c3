package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "holidayservice",
		Short: "SMC-HolidayService",
		Long:  "Сервис планирования отпусков экипажа с проверкой правил пересечения, интервалов и сроков подачи",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Путь к файлу конфигурации")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
