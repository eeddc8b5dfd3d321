package cli

import (
	"github.com/maxaizer/careerboost/internal/auth"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Provision an admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		cfg, dbContext, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		accounts := services.NewAccounts(repositories.NewUsersRepository(dbContext.DB),
			auth.NewGuard(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL))

		admin, err := accounts.CreateAdmin(cmd.Context(), username, email, password)
		if err != nil {
			return err
		}
		log.Infof("admin %s created with id %d", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().String("username", "admin", "admin display name")
	createAdminCmd.Flags().String("email", "", "admin email")
	createAdminCmd.Flags().String("password", "", "admin password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
