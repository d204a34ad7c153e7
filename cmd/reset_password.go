/*
Copyright © 2025 jagadeeshwarid
*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jagadeeshwarid/TaskTrackerPro/config"
	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
)

// resetPasswordCmd rotates a credential from the operator's shell.
// The seeded admin/admin bootstrap account must be rotated this way
// before the system is exposed to real users.
var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset a user's password",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		newPassword, _ := cmd.Flags().GetString("password")

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		store, err := database.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}

		authService := service.NewAuthService(repository.NewUserRepo(store.Users))
		if err := authService.ResetPassword(args[0], newPassword); err != nil {
			log.Fatalf("Failed to reset password: %v", err)
		}
		log.Printf("Password reset for %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(resetPasswordCmd)
	resetPasswordCmd.Flags().StringP("password", "p", "", "new password")
	_ = resetPasswordCmd.MarkFlagRequired("password")
}
