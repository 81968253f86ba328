package consts

// Recommended permissions for files and directories ytcli might create.
const (
	// ** World Readable **
	PermsGenericDir = 0o755
	PermsLogFile    = 0o644

	// ** Private **
	PermsHomeProgDir = 0o700 // ~/.ytcli holds the history DB
	PermsDBFile      = 0o600
	PermsCookieFile  = 0o600 // exported browser cookies
)
