package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"feedbackportal/internal/config"
	"feedbackportal/internal/session"
)

var loginToken string

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Store a portal session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginToken == "" {
			return errors.New("--token is required")
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		st, closer, err := openStorage(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeQuietly(closer)

		user, err := session.Login(cmd.Context(), st, loginToken)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var logoutCommand = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		st, closer, err := openStorage(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeQuietly(closer)

		if err := session.Logout(cmd.Context(), st); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCommand.Flags().StringVar(&loginToken, "token", "", "bearer token issued by the portal")
}

func closeQuietly(closer func() error) {
	if closer != nil {
		_ = closer()
	}
}
