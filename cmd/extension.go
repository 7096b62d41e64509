package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// EnvConfigFile passes the -config flag to extensions. Other settings reach
// them through the FINPULSE_* variables they inherit.
const EnvConfigFile = "FINPULSE_CONFIG"

// ExtensionPrefix is the name prefix of external subcommands.
const ExtensionPrefix = "fbd-"

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmds := range Commands() {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}

// RunExtension attempts to find and execute an external fbd-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	if *configFile != "" {
		abs, err := filepath.Abs(*configFile)
		if err != nil {
			abs = *configFile
		}
		cmd.Env = append(cmd.Env, EnvConfigFile+"="+abs)
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}
	return true, 0
}
