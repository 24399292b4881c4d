package cmd

// SessionsCmd manages scanning sessions
type SessionsCmd struct {
	Complete SessionsCompleteCmd `cmd:"complete" help:"Mark a session completed"`
	List     SessionsListCmd     `cmd:"list" help:"List sessions" default:"1"`
	Notes    SessionsNotesCmd    `cmd:"notes" help:"Replace the notes of a session"`
	Progress SessionsProgressCmd `cmd:"progress" help:"Show the completion progress of a session"`
	Record   SessionsRecordCmd   `cmd:"record" help:"Record one position from typed values or a simulated scan"`
	Start    SessionsStartCmd    `cmd:"start" help:"Start a session at a site"`
	View     SessionsViewCmd     `cmd:"view" aliases:"show" help:"View a session and its scan results"`
}
