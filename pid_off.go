//go:build !kernlog_pid

package kernlog

// Pid reporting is a build-time capability, not runtime configuration.
// Build with -tags kernlog_pid to stamp every line with the process id.
const pidReporting = false
