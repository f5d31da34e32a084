package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Extract ExtractCmd `cmd:"" help:"Extract a fiscal profile from one or more ledger export files."`
	Check   CheckCmd   `cmd:"" help:"Parse a ledger export and report structural warnings."`
	Watch   WatchCmd   `cmd:"" help:"Re-extract the profile whenever the export files change."`
}
