package view

import (
	"fmt"

	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
)

// Version information for the view module.
const (
	// Version is the current version of the view module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)

// ModuleVersions returns the versions of the modules a view is built from.
func ModuleVersions() map[string]string {
	return map[string]string{
		"view": Version,
		"tick": tick.Version,
		"log":  log.Version,
	}
}

// CompatibilityMatrix returns the minimum compatible version of each module.
func CompatibilityMatrix() map[string]string {
	return map[string]string{
		"view": MinCompatibleVersion,
		"tick": tick.MinCompatibleVersion,
		"log":  log.MinCompatibleVersion,
	}
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	versions := ModuleVersions()
	for name, minVersion := range CompatibilityMatrix() {
		if !isVersionCompatible(versions[name], minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, versions[name], minVersion)
		}
	}
	return nil
}

// isVersionCompatible checks if version >= minVersion, both "major.minor.patch".
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
