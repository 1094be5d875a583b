// Package commands provides the CLI commands for the venv tool.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"martianoff/venv/internal/pth"
	"martianoff/venv/internal/venv"
)

// WorkspaceEnvVar is set by `bazel run` to the root of the invoking
// workspace.
const WorkspaceEnvVar = "BUILD_WORKSPACE_DIRECTORY"

// Flag names.
const (
	flagPython                   = "python"
	flagLocation                 = "location"
	flagPythonVersion            = "python-version"
	flagPthFile                  = "pth-file"
	flagPthEntryPrefix           = "pth-entry-prefix"
	flagBuildWorkspaceDirectory  = "build-workspace-directory"
	flagAdditionalWorkspacePaths = "additional-workspace-paths"
	flagPlatform                 = "platform"
	flagVerbose                  = "verbose"
)

// NewRootCmd builds the venv command. Each call returns an independent
// command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "venv",
		Short: "Create a Python virtual environment linked to an existing interpreter",
		Long: `venv materializes a Python virtual environment that symlinks an existing
interpreter instead of copying it, and installs a .pth file listing extra
import paths into the environment's site-packages.

Re-running with the same arguments refreshes the environment in place.

Examples:
  venv --python /usr/bin/python3.11 --python-version 3.11.4 \
       --location out/app.venv --pth-file app.pth

  bazel run //app:venv -- --additional-workspace-paths src,tools`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd, argsFromViper(v))
		},
	}

	flags := cmd.Flags()
	flags.String(flagPython, "", "Source Python interpreter to symlink into the environment")
	flags.String(flagLocation, "", "Destination path of the environment")
	flags.String(flagPythonVersion, "", "Python version, dot separated, e.g. 3.8.12")
	flags.String(flagPthFile, "", "Path to a .pth file to add to the environment's site-packages")
	flags.String(flagPthEntryPrefix, "", "Prefix joined in front of each .pth entry")
	flags.String(flagBuildWorkspaceDirectory, "", "Path to the current Bazel workspace (env "+WorkspaceEnvVar+")")
	flags.StringSlice(flagAdditionalWorkspacePaths, nil, "Comma-separated paths relative to the workspace to add as .pth entries")
	flags.String(flagPlatform, "", "Directory layout family: posix or windows (default: host)")
	flags.BoolP(flagVerbose, "v", false, "Log each step to stderr")

	_ = v.BindPFlags(flags)
	_ = v.BindEnv(flagBuildWorkspaceDirectory, WorkspaceEnvVar)

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func argsFromViper(v *viper.Viper) *Args {
	return &Args{
		Python:                   v.GetString(flagPython),
		Location:                 v.GetString(flagLocation),
		PythonVersion:            v.GetString(flagPythonVersion),
		PthFile:                  v.GetString(flagPthFile),
		PthEntryPrefix:           v.GetString(flagPthEntryPrefix),
		BuildWorkspaceDirectory:  v.GetString(flagBuildWorkspaceDirectory),
		AdditionalWorkspacePaths: v.GetStringSlice(flagAdditionalWorkspacePaths),
		Platform:                 v.GetString(flagPlatform),
		Verbose:                  v.GetBool(flagVerbose),
	}
}

func runCreate(cmd *cobra.Command, args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	platform := venv.CurrentPlatform()
	if args.Platform != "" {
		p, err := venv.PlatformByName(args.Platform)
		if err != nil {
			return err
		}
		platform = p
	}

	opts := venv.Options{
		Python:          resolvePython(args.Python, logger),
		Version:         args.PythonVersion,
		Location:        args.Location,
		PthFile:         pth.NewFile(args.PthFile, args.PthEntryPrefix),
		WorkspaceRoot:   args.BuildWorkspaceDirectory,
		AdditionalPaths: args.AdditionalWorkspacePaths,
		Platform:        platform,
		Logger:          logger,
	}
	if err := venv.Create(opts); err != nil {
		return fmt.Errorf("unable to create virtual environment: %w", err)
	}
	return nil
}

// resolvePython returns path unchanged when it exists. Otherwise it tries
// the Bazel runfiles tree, where `bazel run` targets address their
// toolchain interpreter.
func resolvePython(path string, logger *slog.Logger) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if runfile, err := bazel.Runfile(path); err == nil {
		logger.Debug("resolved interpreter from runfiles", "path", path, "runfile", runfile)
		return runfile
	}
	return path
}
