package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var extraSignature string

func init() {
	cmd := newExtraCmd()
	cmd.Flags().StringVar(&extraSignature, "signature", "", "Show only blocks with this signature (e.g. 0xA0000003)")
	rootCmd.AddCommand(cmd)
}

func newExtraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extra <file.lnk>",
		Short: "List the extra data blocks of a shell link",
		Long: `The extra command lists the extra data blocks of a shell link in file
order as a table of signature, name and size. With --format
json or yaml the decoded fields of every block are included.

Example:
  lnkctl extra notepad.lnk
  lnkctl extra notepad.lnk --signature 0xA0000003 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtra(args)
		},
	}
	return cmd
}

func runExtra(args []string) error {
	var want uint32
	if extraSignature != "" {
		if _, err := fmt.Sscanf(extraSignature, "0x%x", &want); err != nil {
			if _, err := fmt.Sscanf(extraSignature, "%x", &want); err != nil {
				return fmt.Errorf("invalid signature %q", extraSignature)
			}
		}
	}

	link, err := decodeFile(args[0])
	if err != nil {
		return err
	}

	blocks := link.ExtraData[:0:0]
	for _, b := range link.ExtraData {
		if extraSignature == "" || b.Signature() == want {
			blocks = append(blocks, b)
		}
	}

	if quiet {
		return nil
	}
	if settings.Output.Format != "text" {
		return renderMany(out, extraDataReport(blocks), settings.Output.Format)
	}
	if len(blocks) == 0 {
		printInfo("(no extra data blocks)\n")
		return nil
	}
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, []string{hex32(b.Signature()), b.BlockName(), strconv.FormatUint(uint64(b.BlockSize()), 10)})
	}
	printTable(out, []string{"Signature", "Block", "Size"}, rows)
	return nil
}
