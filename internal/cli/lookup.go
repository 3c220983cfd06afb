package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"concursos/internal/concursos/service"
	"concursos/pkg/cpf"
	strutil "concursos/pkg/platform/strings"
)

func openingsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "openings CPF...",
		Short: "List openings compatible with each candidate's professions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			p := opts.printer(cmd)

			if len(args) == 1 {
				sess := svc.NewSession()
				res := sess.LookupOpeningsByNationalID(cmd.Context(), args[0])
				if err := p.openings(args[0], res); err != nil {
					return err
				}
				return sess.Err()
			}

			res, err := svc.Batch(cmd.Context(), service.BatchRequest{CPFs: strutil.DedupeBy(args, cpf.Key)})
			if err != nil {
				return err
			}
			if err := p.batch(res); err != nil {
				return err
			}
			return batchErr(res)
		},
	}
}

func candidatesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates CODE...",
		Short: "List candidates compatible with each opening",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			p := opts.printer(cmd)

			if len(args) == 1 {
				sess := svc.NewSession()
				res := sess.LookupCandidatesByCode(cmd.Context(), args[0])
				if err := p.candidates(args[0], res); err != nil {
					return err
				}
				return sess.Err()
			}

			res, err := svc.Batch(cmd.Context(), service.BatchRequest{Codes: strutil.DedupeAndTrim(args)})
			if err != nil {
				return err
			}
			if err := p.batch(res); err != nil {
				return err
			}
			return batchErr(res)
		},
	}
}

// batchErr summarizes the failed queries of a batch, or returns nil.
func batchErr(res *service.BatchResult) error {
	failed := 0
	for _, o := range res.Openings {
		if o.Err != nil {
			failed++
		}
	}
	for _, c := range res.Candidates {
		if c.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d lookup(s) failed", failed)
}
