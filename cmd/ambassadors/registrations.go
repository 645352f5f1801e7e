package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"startupambassadors/internal/domain"
	"startupambassadors/internal/repository/postgres"
	"startupambassadors/internal/services"
)

// Registrations carry phone numbers, so they are listed here for organisers
// rather than over the public API.
var registrationsCmd = &cobra.Command{
	Use:   "registrations <event-id>",
	Short: "List the registrations for one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := postgres.Open(cmd.Context(), cfg.DBUrl)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := services.NewEventService(
			postgres.NewEventRepository(db),
			postgres.NewRegistrationRepository(db),
			nil, nil, logger, cfg.RequestTimeout,
		)
		regs, err := svc.ListRegistrations(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRegistrations(cmd.OutOrStdout(), regs)
	},
}

func printRegistrations(out io.Writer, regs []*domain.Registration) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REGISTERED\tNAME\tPHONE\tDISTRICT\tEMAIL")
	for _, r := range regs {
		email := "-"
		if r.Email != nil {
			email = *r.Email
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Name, r.Phone, r.District, email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d registrations\n", len(regs))
	return err
}
