package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/lnkkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.lnk>",
		Short: "Summarize a shell link header and its target",
		Long: `The info command decodes a shell link and prints a header summary:
flags, attributes, timestamps, target size, show command, hotkey and the
resolved target path.

Example:
  lnkctl info notepad.lnk
  lnkctl info notepad.lnk --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	link, err := decodeFile(path)
	if err != nil {
		return err
	}

	r := report{}.
		add("File", path).
		add("TargetPath", link.TargetPath())
	if a, ok := link.StringData.Get(types.StringArguments); ok {
		r = r.add("Arguments", a)
	}
	r = append(r, headerReport(link.Header)...)
	r = r.add("ExtraDataBlocks", len(link.ExtraData))

	if quiet {
		return nil
	}
	return render(out, r, settings.Output.Format)
}
