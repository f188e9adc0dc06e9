// voltmon-host reads the voltage lines the MT3620 real-time core prints
// on its UART and either streams them or summarizes a batch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voltmon/host/config"
	"voltmon/host/monitor"
	"voltmon/host/serial"
)

var (
	flagConfig string
	flagDevice string
	flagBaud   int
)

func main() {
	root := &cobra.Command{
		Use:           "voltmon-host",
		Short:         "Host monitor for the voltmon MT3620 firmware",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "board profile YAML (optional)")
	root.PersistentFlags().StringVar(&flagDevice, "device", "", "serial device path (overrides profile)")
	root.PersistentFlags().IntVar(&flagBaud, "baud", 0, "baud rate (overrides profile)")

	root.AddCommand(monitorCmd(), checkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadProfile merges the optional YAML profile with flag overrides.
func loadProfile() (*config.Profile, error) {
	p := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if flagDevice != "" {
		p.Device = flagDevice
	}
	if flagBaud != 0 {
		p.Baud = flagBaud
	}
	return p, p.Validate()
}

func openMonitor(p *config.Profile) (serial.Port, *monitor.Monitor, error) {
	cfg := serial.DefaultConfig(p.Device)
	cfg.Baud = p.Baud
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	m := monitor.New(port)
	m.OnText = func(line string) {
		fmt.Printf("# %s\n", line)
	}
	return port, m, nil
}

func monitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Stream voltage readings until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}

			port, m, err := openMonitor(p)
			if err != nil {
				return err
			}
			defer port.Close()

			fmt.Printf("Monitoring %s at %d baud (channel %d, %d mV reference)\n",
				p.Device, p.Baud, p.Channel, p.ReferenceMilliVolts)

			_, err = m.Collect(0, func(r monitor.Reading) {
				fmt.Printf("%s V (%d mV)\n", r.Line, r.MilliVolts)
			})
			return err
		},
	}
}

func checkCmd() *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Collect a window of readings and print statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			if samples > 0 {
				p.Window = samples
			}

			port, m, err := openMonitor(p)
			if err != nil {
				return err
			}
			defer port.Close()

			fmt.Printf("Collecting %d samples from %s...\n", p.Window, p.Device)
			readings, err := m.Collect(p.Window, nil)
			if err != nil {
				return err
			}
			if len(readings) == 0 {
				return fmt.Errorf("no voltage lines received; is the firmware running?")
			}

			s := monitor.Summarize(readings)
			fmt.Printf("samples: %d\n", s.Count)
			fmt.Printf("mean:    %.1f mV\n", s.MeanMV)
			fmt.Printf("stddev:  %.1f mV\n", s.StdDev)
			fmt.Printf("min:     %d mV\n", s.MinMV)
			fmt.Printf("max:     %d mV\n", s.MaxMV)
			if s.MaxMV > p.ReferenceMilliVolts {
				fmt.Printf("warning: max reading exceeds %d mV reference\n", p.ReferenceMilliVolts)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 0, "number of samples to collect (default: profile window)")
	return cmd
}
