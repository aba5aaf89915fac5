package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"electroledger/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open a session",
	Long: `Open a session for the account set by LEDGER_USERNAME and
LEDGER_PASSWORD_HASH. The password is read from standard input unless
--password is given.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{standalone: "true"},
	RunE:        runLogin,
}

var logoutCmd = &cobra.Command{
	Use:         "logout",
	Short:       "Close the session",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{standalone: "true"},
	RunE:        runLogout,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for LEDGER_PASSWORD_HASH",
	Example: `  echo -n 'secret' | electroledger hash-password
  electroledger hash-password secret`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{standalone: "true"},
	RunE:        runHashPassword,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, hashPasswordCmd)

	loginCmd.Flags().StringP("username", "u", "", "Username (default: LEDGER_USERNAME)")
	loginCmd.Flags().StringP("password", "p", "", "Password (default: read from stdin)")
	hashPasswordCmd.Flags().Int("cost", 0, "bcrypt cost (default: bcrypt.DefaultCost)")
}

func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	if username == "" {
		username = cfg.LedgerUsername
	}
	password, _ := cmd.Flags().GetString("password")
	if !cmd.Flags().Changed("password") {
		fmt.Fprint(cmd.ErrOrStderr(), "كلمة المرور: ")
		var err error
		if password, err = readSecret(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	s, err := sessions().Login(username, password)
	if err != nil {
		return err
	}
	return done(cmd, s, "مرحباً %s", s.Username)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := sessions().Logout(); err != nil {
		return err
	}
	return done(cmd, map[string]bool{"authenticated": false}, "تم تسجيل الخروج")
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		var err error
		if password, err = readSecret(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	cost, _ := cmd.Flags().GetInt("cost")

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}
