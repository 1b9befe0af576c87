// Package mpctl is the thin process-bootstrap and error-taxonomy glue the
// four CLI drivers in §6.1 share: one call to configure logging and the
// process-wide CorePrecision, and a mapping from the package-level
// sentinel errors in §7's taxonomy to process exit codes.
package mpctl

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mpreal/mpcore/limb"
	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/precision"
)

// ExitCode is the §6.1 exit-code taxonomy: 0 on success, a distinct
// nonzero code per §7 error kind otherwise, so a driver's shell caller
// can distinguish a parse failure from a configuration failure.
type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitParseError ExitCode = 1
	ExitAllocationFailed ExitCode = 2
	ExitConfigurationFailed ExitCode = 3
	ExitUnknown ExitCode = 9
)

// Bootstrap configures process-wide logging and the CorePrecision
// singleton for a CLI driver, returning the configured instance.
func Bootstrap(digits10, fftThreads int) (*precision.CorePrecision, error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cp, err := precision.Configure(digits10, fftThreads)
	if err != nil {
		return nil, errors.Wrap(err, "mpctl: bootstrap failed")
	}
	return cp, nil
}

// ClassifyExit maps an error returned by the core packages to the §7
// exit-code taxonomy, defaulting to ExitUnknown for anything it doesn't
// recognize (arithmetic itself never returns an error here -- domain and
// range conditions are NaN/Inf sentinels per §7, not Go errors).
func ClassifyExit(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, mpreal.ErrParse):
		return ExitParseError
	case errors.Is(err, limb.ErrAllocationFailed):
		return ExitAllocationFailed
	case errors.Is(err, precision.ErrConfigurationFailed):
		return ExitConfigurationFailed
	default:
		return ExitUnknown
	}
}
