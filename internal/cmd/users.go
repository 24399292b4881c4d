package cmd

import "fmt"

// UsersCmd manages the field engineers registered on this device
type UsersCmd struct {
	Add  UsersAddCmd  `cmd:"add" help:"Register a field engineer"`
	List UsersListCmd `cmd:"list" help:"List field engineers" default:"1"`
}

// UsersAddCmd registers a user
type UsersAddCmd struct {
	Email string `arg:"" help:"Email address"`
	Name  string `help:"Full name" required:""`
	Role  string `help:"Role" default:"installer"`
}

// Run executes the add command
func (u *UsersAddCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	user, err := cli.Container.SettingsService.AddUser(u.Name, u.Email, u.Role)
	if err != nil {
		return err
	}
	fmt.Printf("User %s <%s> added\n", user.Name, user.Email)
	return nil
}

// UsersListCmd lists users
type UsersListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (u *UsersListCmd) Run(cli *CLI) error {
	users := cli.Container.SettingsService.Settings().Users
	if u.Format == "json" {
		return printJSON(users)
	}
	if len(users) == 0 {
		fmt.Println("No users registered")
		return nil
	}
	w := newTable()
	fmt.Fprintln(w, "NAME\tEMAIL\tROLE")
	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\n", user.Name, user.Email, user.Role)
	}
	return w.Flush()
}
