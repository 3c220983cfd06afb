package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"concursos/internal/concursos/handler"
	"concursos/pkg/cpf"
)

func cpfCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "cpf",
		Short: "Clean, format, mask and validate CPF numbers",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "validate VALUE",
			Short: "Check a CPF; exits non-zero when it is invalid",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw := args[0]
				resp := handler.CPFValidationResponse{
					Clean:         cpf.Clean(raw),
					Formatted:     cpf.Format(raw),
					Valid:         cpf.IsValid(raw),
					ChecksumValid: cpf.ValidChecksum(raw),
				}
				if err := opts.printer(cmd).validation(resp); err != nil {
					return err
				}
				if !resp.Valid {
					return errors.New("invalid CPF")
				}
				return nil
			},
		},
		transformCmd(opts, "format VALUE", "Lay out a CPF as XXX.XXX.XXX-XX", cpf.Format),
		transformCmd(opts, "mask VALUE", "Apply the progressive input mask", cpf.Mask),
		transformCmd(opts, "clean VALUE", "Strip everything but digits", cpf.Clean),
	)
	return c
}

func transformCmd(opts *options, use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := fn(args[0])
			if opts.format == formatJSON {
				return opts.printer(cmd).json(map[string]string{"value": out})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
