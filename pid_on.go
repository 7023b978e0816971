//go:build kernlog_pid

package kernlog

const pidReporting = true
