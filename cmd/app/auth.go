package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// credReadTimeout caps credential store reads from the CLI; a timeout is
// displayed as "not logged in" rather than as a failure.
const credReadTimeout = 5 * time.Second

func (app *application) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <email> <password>",
		Short: "Create an account and store the session credentials",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Register(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			err = app.creds.SaveAuthData(res.Token, res.User.ID, res.User.Username, res.User.Email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", res.User.Username)
			return nil
		},
	}
}

func (app *application) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and store the session credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			err = app.creds.SaveAuthData(res.Token, res.User.ID, res.User.Username, res.User.Email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", res.User.Username)
			return nil
		},
	}
}

func (app *application) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.creds.ClearAuthData(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (app *application) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), credReadTimeout)
			defer cancel()

			data, err := app.creds.Load(ctx)
			if err != nil || data.Token == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %s)\n", data.Username, data.Email, data.UserID)
			return nil
		},
	}
}
