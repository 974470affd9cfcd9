// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// HomeEnvVar returns the environment variable os.UserHomeDir consults on goos.
func HomeEnvVar(goos string) string {
	switch goos {
	case Windows:
		return "USERPROFILE"
	case "plan9":
		return "home"
	default:
		return "HOME"
	}
}
