//go:build !windows

package shell

import "os/exec"

func configureProcess(cmd *exec.Cmd) {}
