package client

import "github.com/spf13/cobra"

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipSetup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, a.buildInfo)
		},
	}
}
