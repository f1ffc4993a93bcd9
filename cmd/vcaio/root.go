package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/honeybugserial/vcpp-aio-auto/internal/console"
	"github.com/honeybugserial/vcpp-aio-auto/internal/messages"
	"github.com/honeybugserial/vcpp-aio-auto/internal/pipeline"
	"github.com/honeybugserial/vcpp-aio-auto/internal/prompt"
)

// getwd is a seam for tests.
var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	var (
		autoAccept       bool
		dryRun           bool
		preserveDownload bool
	)

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := getwd()
			if err != nil {
				return err
			}

			out := console.NewWithLog(cmd.OutOrStdout(), workDir)
			defer out.Close()

			cfg := pipeline.Config{
				AutoAccept:       autoAccept,
				DryRun:           dryRun,
				PreserveDownload: preserveDownload,
				WorkDir:          workDir,
				Confirmer: prompt.ConsoleConfirmer{
					In:  cmd.InOrStdin(),
					Out: cmd.OutOrStdout(),
				},
			}

			_, err = pipeline.Run(cmd.Context(), pipeline.RealSystem{}, cfg, out)
			if err != nil {
				return err
			}
			if path := out.LogPath(); path != "" {
				out.Info(messages.RunLogWrittenFmt, path)
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.Flags().BoolVar(&autoAccept, "auto-accept", false, messages.RootFlagAutoAccept)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.Flags().BoolVar(&preserveDownload, "preserve-download", false, messages.RootFlagPreserveDownload)

	return cmd
}
