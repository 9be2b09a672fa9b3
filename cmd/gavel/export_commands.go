package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"gavel/internal/config"
	"gavel/internal/export"
	"gavel/internal/logging"
	"gavel/internal/meeting"
)

type exportWindow struct {
	dateFlag  string
	startFlag string
	endFlag   string
	outFlag   string
}

func (w *exportWindow) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&w.dateFlag, "date", "d", "", "Date to export (MM/DD/YYYY, defaults to today)")
	cmd.Flags().StringVar(&w.startFlag, "start", "", "Range start date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&w.endFlag, "end", "", "Range end date (MM/DD/YYYY)")
	cmd.Flags().StringVarP(&w.outFlag, "output", "o", "", "Output directory (defaults to the configured export dir)")
}

func (w *exportWindow) isRange() bool {
	return w.startFlag != "" || w.endFlag != ""
}

func (w *exportWindow) bounds() (string, string, error) {
	if w.isRange() {
		if w.startFlag == "" || w.endFlag == "" {
			return "", "", fmt.Errorf("both --start and --end are required for a range export")
		}
		return w.startFlag, w.endFlag, nil
	}
	date := w.dateFlag
	if date == "" {
		date = time.Now().Format("01/02/2006")
	}
	return date, date, nil
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	window := &exportWindow{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a meeting CSV to the export directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := window.bounds()
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			fetcher, err := ctx.newFetcher(logger)
			if err != nil {
				return err
			}

			var rows []export.DatedRecord
			if window.isRange() && start != end {
				days, err := fetcher.FetchRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
				for _, day := range days {
					if day.Err != nil {
						logger.Warn("skipping day", logging.String("date", day.Date), logging.Error(day.Err))
						continue
					}
					for _, rec := range day.Records {
						rows = append(rows, export.DatedRecord{Date: day.Date, Record: rec})
					}
				}
			} else {
				records, err := fetcher.FetchMeetings(cmd.Context(), start)
				if err != nil {
					return err
				}
				for _, rec := range records {
					rows = append(rows, export.DatedRecord{Record: rec})
				}
			}

			filename := export.GenericFilename(start, end)
			path, err := ctx.exportPath(window.outFlag, filename)
			if err != nil {
				return err
			}
			if err := writeExportFile(path, func(f *os.File) error {
				return export.WriteGeneric(f, rows, window.isRange() && start != end)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	window.register(cmd)
	return cmd
}

func newExportInvintusCommand(ctx *commandContext) *cobra.Command {
	window := &exportWindow{}
	var encoderFlag string
	var categoryFlag string
	var runtimeFlag string
	var liveToBreakFlag bool

	cmd := &cobra.Command{
		Use:   "export-invintus",
		Short: "Write a broadcast schedule CSV to the export directory",
		Long: "Exports every exportable meeting in the window in the Invintus dialect. " +
			"The encoder and category flags apply to all rows; the web interface offers per-meeting control.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := window.bounds()
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if encoderFlag != "" && !slices.Contains(cfg.EncoderIDs(), encoderFlag) {
				return fmt.Errorf("encoder %q is not in the configured roster", encoderFlag)
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			fetcher, err := ctx.newFetcher(logger)
			if err != nil {
				return err
			}

			var records []meeting.Record
			if window.isRange() && start != end {
				days, err := fetcher.FetchRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
				for _, day := range days {
					if day.Err != nil {
						logger.Warn("skipping day", logging.String("date", day.Date), logging.Error(day.Err))
						continue
					}
					records = append(records, day.Records...)
				}
			} else {
				if records, err = fetcher.FetchMeetings(cmd.Context(), start); err != nil {
					return err
				}
			}

			sel := selectAll(records, encoderFlag, categoryFlag, runtimeFlag, liveToBreakFlag)

			filename := export.InvintusFilename(start, end)
			path, err := ctx.exportPath(window.outFlag, filename)
			if err != nil {
				return err
			}
			if err := writeExportFile(path, func(f *os.File) error {
				return export.WriteInvintus(f, records, sel)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	window.register(cmd)
	cmd.Flags().StringVar(&encoderFlag, "encoder", "", "Encoder ID applied to every row")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category applied to every row (defaults per row)")
	cmd.Flags().StringVar(&runtimeFlag, "runtime", "01:00", "Estimated runtime (HH:MM)")
	cmd.Flags().BoolVar(&liveToBreakFlag, "live-to-break", false, "Mark rows live-to-break")
	return cmd
}

// selectAll builds a selection covering every supplied meeting, the CLI
// equivalent of checking every box on the web form.
func selectAll(records []meeting.Record, encoder, category, runtime string, liveToBreak bool) export.Selection {
	sel := export.Selection{
		Encoders:    make(map[string]string, len(records)),
		Categories:  make(map[string]string, len(records)),
		Runtime:     runtime,
		LiveToBreak: liveToBreak,
	}
	if sel.Runtime == "" {
		sel.Runtime = "01:00"
	}
	for _, rec := range records {
		id := meeting.StableID(rec)
		if id == meeting.UnknownID {
			continue
		}
		sel.Encoders[id] = encoder
		if category != "" {
			sel.Categories[id] = category
		}
	}
	return sel
}

func (c *commandContext) exportPath(override, filename string) (string, error) {
	dir := override
	if dir == "" {
		cfg, err := c.ensureConfig()
		if err != nil {
			return "", err
		}
		dir = cfg.Export.Dir
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	if expanded == "" {
		expanded = "."
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("create export directory %q: %w", expanded, err)
	}
	return filepath.Join(expanded, filename), nil
}

func writeExportFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return f.Close()
}
