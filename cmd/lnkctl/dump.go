package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.lnk>...",
		Short: "Full decode of one or more shell links",
		Long: `The dump command decodes every section of a shell link: header,
target ID list, link info, string data and extra data blocks.

Example:
  lnkctl dump notepad.lnk
  lnkctl dump a.lnk b.lnk --format yaml
  lnkctl dump notepad.lnk --codepage cp437`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	reports := make([]report, 0, len(args))
	for _, path := range args {
		link, err := decodeFile(path)
		if err != nil {
			return err
		}
		reports = append(reports, linkReport(path, link))
	}

	if quiet {
		return nil
	}
	if len(reports) == 1 {
		return render(out, reports[0], settings.Output.Format)
	}
	return renderMany(out, reports, settings.Output.Format)
}
