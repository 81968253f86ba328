package cfg

import (
	"errors"

	"ytcli/internal/domain/consts"
	"ytcli/internal/domain/errs"
	"ytcli/internal/utils/logging"
)

// Process exit codes, one per outcome kind.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitFormat     = 2
	ExitLaunch     = 3
	ExitPartial    = 4
	ExitFatal      = 5
	ExitTerminated = 6
	ExitCancelled  = 130
)

// ExitCode maps an error returned by a command to the process exit code.
// Errors that are not download outcomes count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var fe *errs.FormatError
	if errors.As(err, &fe) {
		return ExitFormat
	}

	var ee *errs.ExecError
	if !errors.As(err, &ee) {
		return ExitUsage
	}

	switch ee.Kind {
	case errs.KindLaunch:
		return ExitLaunch
	case errs.KindPartial:
		return ExitPartial
	case errs.KindTerminated:
		return ExitTerminated
	case errs.KindCancelled:
		return ExitCancelled
	default:
		return ExitFatal
	}
}

// reportOutcome prints the result of a download the way each kind deserves.
func reportOutcome(err error) {
	switch errs.KindOf(err) {
	case errs.KindNone:
		logging.S("Download completed successfully")
	case errs.KindFormat:
		logging.E("%v", err)
	case errs.KindLaunch:
		logging.E("%v", err)
		logging.I(consts.InstallHint)
	case errs.KindPartial:
		logging.W("%v", err)
		logging.I(consts.PartialHint)
	case errs.KindCancelled:
		logging.W("%v", err)
	default:
		logging.E("%v", err)
	}
}
