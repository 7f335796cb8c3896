package implement

import (
	"fmt"

	"github.com/bft-labs/implement/pkg/codec"
	"github.com/bft-labs/implement/pkg/log"
	"github.com/bft-labs/implement/pkg/modload"
	"github.com/bft-labs/implement/pkg/stack"
)

// Version information for the implement module.
const (
	// Version is the current version of the implement module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

// ModuleVersions returns the version of every sub-module.
func ModuleVersions() map[string]string {
	return map[string]string{
		"implement": Version,
		"modload":   modload.Version,
		"codec":     codec.Version,
		"stack":     stack.Version,
		"log":       log.Version,
	}
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"modload": {modload.Version, modload.MinCompatibleVersion},
		"codec":   {codec.Version, codec.MinCompatibleVersion},
		"stack":   {stack.Version, stack.MinCompatibleVersion},
		"log":     {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible reports whether version >= minVersion ("major.minor.patch").
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
