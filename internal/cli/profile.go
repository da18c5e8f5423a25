package cli

import (
	"fmt"

	"github.com/pkg/profile"
)

// startProfile starts profiling in the given mode, writing into dir.
// The empty mode disables profiling.
func startProfile(mode, dir string) (stop func(), err error) {
	var kind func(*profile.Profile)

	switch mode {
	case "":
		return nil, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}

	return profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook).Stop, nil
}
