/*
Copyright © 2025 jagadeeshwarid
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasktrackerpro",
	Short: "Employee management backend",
	Long: `TaskTrackerPro is the backend for an internal employee management
system: authentication, task assignment and approval, leave requests
and login/logout timesheets, with admin and employee roles.

State lives in a directory of CSV files; run "start" to serve the
HTTP API on top of it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
