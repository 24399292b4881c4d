package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// AdminCmd manages the admin password and login
type AdminCmd struct {
	Login       AdminLoginCmd       `cmd:"login" help:"Start an admin session"`
	Logout      AdminLogoutCmd      `cmd:"logout" help:"End the admin session"`
	SetPassword AdminSetPasswordCmd `cmd:"set-password" help:"Set or change the admin password"`
}

// readPassword prompts for a password unless one was given with --password
// or FIELDSCAN_ADMIN_PASSWORD
func readPassword(title, given string) (string, error) {
	if given != "" {
		return given, nil
	}
	var password string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(password), nil
}

// AdminLoginCmd logs in as admin
type AdminLoginCmd struct {
	Password string `help:"Admin password (prompted when empty)" env:"FIELDSCAN_ADMIN_PASSWORD"`
}

// Run executes the login command
func (a *AdminLoginCmd) Run(cli *CLI) error {
	password, err := readPassword("Admin password", a.Password)
	if err != nil {
		return err
	}
	expiry, err := cli.Container.AdminService.Login(password)
	if err != nil {
		return err
	}
	fmt.Printf("Admin session valid until %s\n", formatTime(&expiry))
	return nil
}

// AdminLogoutCmd ends the admin session
type AdminLogoutCmd struct{}

// Run executes the logout command
func (a *AdminLogoutCmd) Run(cli *CLI) error {
	if err := cli.Container.AdminService.Logout(); err != nil {
		return err
	}
	fmt.Println("Admin session ended")
	return nil
}

// AdminSetPasswordCmd sets the admin password. Changing an existing
// password needs a valid admin session.
type AdminSetPasswordCmd struct {
	Password string `help:"New admin password (prompted when empty)"`
}

// Run executes the set-password command
func (a *AdminSetPasswordCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	password, err := readPassword("New admin password", a.Password)
	if err != nil {
		return err
	}
	if err := cli.Container.AdminService.SetPassword(password); err != nil {
		return err
	}
	fmt.Println("Admin password set")
	return nil
}
