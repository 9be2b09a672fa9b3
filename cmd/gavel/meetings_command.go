package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gavel/internal/meeting"
)

const ansiRed = "\x1b[31m"
const ansiReset = "\x1b[0m"

func newMeetingsCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string
	var startFlag string
	var endFlag string

	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "List legislative meetings for a date or date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			fetcher, err := ctx.newFetcher(logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if startFlag != "" || endFlag != "" {
				if startFlag == "" || endFlag == "" {
					return fmt.Errorf("both --start and --end are required for a range listing")
				}
				days, err := fetcher.FetchRange(cmd.Context(), startFlag, endFlag)
				if err != nil {
					return err
				}
				for _, day := range days {
					if day.Err != nil {
						fmt.Fprintf(out, "%s: %v\n", day.Date, day.Err)
						continue
					}
					printDay(cmd, day.Date, day.Records, colorize)
				}
				return nil
			}

			date := dateFlag
			if date == "" {
				date = time.Now().Format("01/02/2006")
			}
			records, err := fetcher.FetchMeetings(cmd.Context(), date)
			if err != nil {
				return err
			}
			printDay(cmd, date, records, colorize)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date to list (MM/DD/YYYY, defaults to today)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Range start date (MM/DD/YYYY)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Range end date (MM/DD/YYYY)")
	return cmd
}

func printDay(cmd *cobra.Command, date string, records []meeting.Record, colorize bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, meeting.FormatDateWithDay(date))

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if meeting.ShouldSkip(rec) {
			continue
		}
		status := meeting.Status(rec)
		if colorize && rec.MeetingCanceled {
			status = ansiRed + status + ansiReset
		}
		formattedTime := ""
		if rec.MeetingTime != "" {
			formattedTime = meeting.FormatTime(rec.MeetingTime)
		}
		rows = append(rows, []string{
			meeting.BuildTitle(rec),
			status,
			formattedTime,
			rec.Location,
			strings.Join(meeting.Bills(rec), ", "),
		})
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "  No meetings scheduled")
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintln(out, renderTable([]string{"Title", "Status", "Time", "Location", "Bills"}, rows))
	fmt.Fprintln(out)
}
