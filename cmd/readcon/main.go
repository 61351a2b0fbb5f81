package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	readcon "github.com/lode-org/readcon-core"
	"github.com/lode-org/readcon-core/conplot"
)

const (
	appName = "readcon"
	version = "v0.2.0"
)

var (
	cfgFile string
	log     zerolog.Logger
)

// rootCmd reads a con file, reports on it, and optionally re-serializes
// the valid frames to a second path.
var rootCmd = &cobra.Command{
	Use:   appName + " <input.con> [output.con]",
	Short: "Read, summarize and rewrite con trajectory files",
	Long: `readcon parses multi-frame con files of atomistic simulation
snapshots. It reports how many valid frames the input holds and a summary
of the last one; malformed frames are discarded with a note, not a crash.
When an output path is given, every valid frame is written back to it,
byte-compatible with the input layout.

Files ending in .gz or .zst are read and written compressed.`,
	Version: version,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, err := readAll(args[0])
		if err != nil {
			return err
		}
		last := frames[len(frames)-1]
		fmt.Printf("-> Successfully parsed %d valid frames.\n", len(frames))
		fmt.Printf("\n-> Summary of last valid frame:\n")
		fmt.Printf("  - Box vectors: %v\n", last.Header.BoxL)
		fmt.Printf("  - Angles: %v\n", last.Header.Angles)
		fmt.Printf("  - Atom masses: %v\n", last.Header.MassesPerType)
		fmt.Printf("  - Number of atom types: %d\n", last.Header.NatmTypes)
		fmt.Printf("  - Atom numbers per type: %v\n", last.Header.NatmsPerType)
		fmt.Printf("  - Total atoms: %d\n", last.Len())
		if com, err := last.MassCenter(); err == nil {
			fmt.Printf("  - Center of mass: %.6f %.6f %.6f\n", com[0], com[1], com[2])
		}
		if last.Len() > 0 {
			a := last.Atoms[last.Len()-1]
			fmt.Printf("  - Last atom: %s %.6f %.6f %.6f fixed=%v id=%d\n", a.Symbol, a.X, a.Y, a.Z, a.IsFixed, a.AtomID)
		}
		if len(args) == 2 {
			w, err := readcon.NewWriter(args[1], viper.GetInt("precision"))
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Extend(frames); err != nil {
				return err
			}
			fmt.Printf("\n-> Wrote all frames to '%s'.\n", args[1])
		}
		return nil
	},
}

// countCmd only skips over frames, exercising the header-only fast path,
// so it stays cheap on very large trajectories.
var countCmd = &cobra.Command{
	Use:   "count <input.con>",
	Short: "Count the frames of a con file without parsing atom data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := readcon.New(args[0])
		if err != nil {
			return err
		}
		n := 0
		for {
			err := it.Forward()
			if err == nil {
				n++
				continue
			}
			if _, last := err.(readcon.LastFrameError); last {
				break
			}
			log.Warn().Err(err).Msg("discarding unskippable remainder")
			break
		}
		fmt.Printf("%d\n", n)
		return nil
	},
}

// plotCmd renders one frame as an x-y scatter plot.
var plotCmd = &cobra.Command{
	Use:   "plot <input.con> <output>",
	Short: "Plot the x-y projection of a frame as a PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		skip := viper.GetInt("frame")
		it, err := readcon.New(args[0])
		if err != nil {
			return err
		}
		for i := 0; i < skip; i++ {
			if err := it.Forward(); err != nil {
				return fmt.Errorf("can't reach frame %d: %w", skip, err)
			}
		}
		frame, err := it.Next()
		if err != nil {
			return fmt.Errorf("can't parse frame %d: %w", skip, err)
		}
		title := fmt.Sprintf("%s, frame %d", args[0], skip)
		return conplot.XYProjection(frame, title, args[1])
	},
}

//readAll collects every valid frame of the file, logging and discarding
//the malformed ones, as a trajectory with one corrupt frame is still
//worth reading. It fails if no frame at all was valid.
func readAll(path string) ([]*readcon.ConFrame, error) {
	it, err := readcon.New(path)
	if err != nil {
		return nil, err
	}
	var frames []*readcon.ConFrame
	for {
		frame, err := it.Next()
		if err == nil {
			frames = append(frames, frame)
			continue
		}
		if _, last := err.(readcon.LastFrameError); last {
			break
		}
		log.Warn().Err(err).Msg("discarding an incomplete frame")
		if !it.Readable() {
			break
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("no valid frames found in %s", path)
	}
	return frames, nil
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".readcon")
	}
	viper.SetEnvPrefix("READCON")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .readcon.yaml)")
	rootCmd.PersistentFlags().Int("precision", 6, "fractional digits written to output files")
	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	plotCmd.Flags().Int("frame", 0, "index of the frame to plot")
	viper.BindPFlag("frame", plotCmd.Flags().Lookup("frame"))
	rootCmd.AddCommand(countCmd, plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
