package diagnostics

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/style"
)

const installCommand = "go install github.com/nestoca/envlinks/cmd/envlinks@latest"

type ExecutableOptions struct {
	LookupExecutable func() (string, error)
	AbsolutePath     func(string) (string, error)
}

func diagnoseExecutable(cfg *config.Config, cliVersion string, opts ExecutableOptions) (section Section) {
	if opts.LookupExecutable == nil {
		opts.LookupExecutable = os.Executable
	}
	if opts.AbsolutePath == nil {
		opts.AbsolutePath = filepath.Abs
	}

	section.Title = "Executable"

	section.add(info, label("Version", cliVersion))

	switch {
	case cfg.MinVersion == "":
	case !semver.IsValid(cliVersion):
		section.add(warning, fmt.Sprintf("Version is not in semver format and cannot be compared with minimum of %s required by project", style.Code(cfg.MinVersion)))
	case semver.Compare(cliVersion, cfg.MinVersion) < 0:
		section.add(
			failed,
			fmt.Sprintf("Version does not meet minimum of %s required by project", style.Code(cfg.MinVersion)),
			note(hint, fmt.Sprintf("Update envlinks using: %s", style.Code(installCommand))),
		)
		return
	default:
		section.add(success, fmt.Sprintf("Version meets minimum of %s required by project", style.Code(cfg.MinVersion)))
	}

	execPath, err := opts.LookupExecutable()
	if err != nil {
		section.add(failed, "failed to get executable path: "+err.Error())
		return
	}

	absolutePath, err := opts.AbsolutePath(execPath)
	if err != nil {
		section.add(failed, "failed to get absolute path of executable: "+err.Error())
		return
	}

	section.add(info, label("File path", absolutePath))
	return
}
