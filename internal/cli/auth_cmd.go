package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/api"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				if !app.interactive() {
					return fmt.Errorf("--email and --password are required when not running in a terminal")
				}
				if err := wizardLogin(&email, &password).Run(); err != nil {
					return err
				}
			}

			sess, err := withSpinner(app, cmd, "Signing in...", func() (*domain.AuthSession, error) {
				return app.Sessions.Login(cmd.Context(), domain.Credentials{Email: email, Password: password})
			})
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					return fmt.Errorf("invalid email or password")
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", formatter.Bold(sess.Username))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				if !app.interactive() {
					return fmt.Errorf("--password is required when not running in a terminal")
				}
				if err := wizardPassword(&password).Run(); err != nil {
					return err
				}
			}

			sess, err := withSpinner(app, cmd, "Creating account...", func() (*domain.AuthSession, error) {
				return app.Sessions.Register(cmd.Context(), domain.Registration{
					Username: username,
					Email:    email,
					Password: password,
				})
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are now logged in.\n", formatter.Bold(sess.Username))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Display name (3-50 characters)")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password, at least 8 characters (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Sessions.Current(cmd.Context())
			if err != nil {
				return err
			}

			pairs := [][2]string{
				{"User", sess.Username},
				{"Email", sess.Email},
				{"User ID", fmt.Sprintf("%d", sess.UserID)},
			}
			if exp, ok := app.Sessions.Expiry(sess); ok {
				pairs = append(pairs, [2]string{"Expires", formatter.RelativeDateFrom(exp, app.now())})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderKV(pairs))
			return nil
		},
	}
}
