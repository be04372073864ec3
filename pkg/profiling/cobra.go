package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Hooks wires CPU/heap profiling and the timing summary into a cobra root command.
type Hooks struct {
	cpuProfileFile *os.File
	cpuProfilePath string
	memProfilePath string
	timing         bool
	loggerFor      func(*cobra.Command) *logrus.Entry
}

// NewHooks creates profiling hooks that report through the logger loggerFor
// returns for the running command.
func NewHooks(loggerFor func(*cobra.Command) *logrus.Entry) *Hooks {
	return &Hooks{loggerFor: loggerFor}
}

// AddFlags registers --cpu-profile, --mem-profile and --timing on cmd.
func (h *Hooks) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&h.cpuProfilePath, "cpu-profile", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&h.memProfilePath, "mem-profile", "", "Write memory profile to file")
	cmd.PersistentFlags().BoolVar(&h.timing, "timing", false, "Print a timing summary of path queries on exit")
}

// PreRun starts whatever the flags asked for. Call it from PersistentPreRunE.
func (h *Hooks) PreRun(cmd *cobra.Command, args []string) error {
	if h.timing {
		Enable()
	}

	if h.cpuProfilePath != "" {
		f, err := os.Create(h.cpuProfilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		h.cpuProfileFile = f
	}
	return nil
}

// PostRun stops profiling, writes profiles and prints the timing summary to
// the command's stderr. Call it from PersistentPostRun.
func (h *Hooks) PostRun(cmd *cobra.Command, args []string) {
	logger := h.loggerFor(cmd)
	if h.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		h.cpuProfileFile.Close()
		h.cpuProfileFile = nil
		logger.WithField("path", h.cpuProfilePath).Info("CPU profile written")
	}

	if h.memProfilePath != "" {
		if err := writeHeapProfile(h.memProfilePath); err != nil {
			logger.WithError(err).Warn("could not write memory profile")
		} else {
			logger.WithField("path", h.memProfilePath).Info("Memory profile written")
		}
	}

	if h.timing {
		Summarize(cmd.ErrOrStderr())
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
