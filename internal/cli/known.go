// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/internal/logging"
)

// NewKnownCommand creates the known command.
func NewKnownCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "known",
		Short: "Replay the known-data scenarios",
		Long: `Replay the fixed scenarios with known answers over Z/100:
(1,2;3,4)^2, (1,1;1,0)^10 and (1,0;0,1)^5.

Exits with a failure when any result differs from the expected one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hook := logging.StepHook(rootOpts.Logger())
			if err := harness.RunKnown(cmd.OutOrStdout(), hook); err != nil {
				return WrapExitError(ExitFailure, "known", err)
			}
			return nil
		},
	}
}
