package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/char-archive/models"
	"github.com/spf13/cobra"
)

var (
	// User flags
	userEmail    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage administrator accounts",
}

// userCreateCmd registers an administrator
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator account",
	Long: `Create an administrator who can sign in from the client and edit the archive.

Examples:
  archivectl user create --email admin@example.com --password s3cret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := models.Credentials{
			Email:    strings.TrimSpace(userEmail),
			Password: userPassword,
		}
		if creds.Email == "" || creds.Password == "" {
			return errors.New("--email and --password are required")
		}

		log := newLogger()
		tk, err := openToolkit(cmd.Context(), log)
		if err != nil {
			return err
		}
		defer tk.Close()

		user, err := tk.auth.CreateUser(cmd.Context(), creds)
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(user)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created administrator %s (id %d)\n", user.Email, user.UserID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "Administrator email")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Administrator password")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
