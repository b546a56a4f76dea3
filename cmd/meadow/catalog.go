package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/meadow"
	"github.com/spf13/cobra"
)

func printCatalog(cmd *cobra.Command, args []string) error {
	cat, err := cfg.BuildCatalog()
	if err != nil {
		return err
	}
	return writeCatalog(cmd.OutOrStdout(), cat)
}

// writeCatalog prints each type table with the digit key that selects an
// entry. Entries past the ninth cannot be selected from the keyboard.
func writeCatalog(out io.Writer, cat *meadow.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "TILES [T]\tKIND\tHEIGHT\t")
	for i, tt := range cat.Tiles {
		fmt.Fprintf(w, "%s %s\t%s\t%d\t\n", selectKey(i), tt.Name, tt.Kind, tt.Height)
	}
	fmt.Fprintln(w, "\t\t\t")
	fmt.Fprintln(w, "PLANTS [P]\tSIZE\tGROWS ON\t")
	for i, pt := range cat.Plants {
		on := "grass"
		if pt.GrowsOnWetDirt {
			on = "wet dirt"
		}
		fmt.Fprintf(w, "%s %s\t%d\t%s\t\n", selectKey(i), pt.Name, pt.Size, on)
	}
	fmt.Fprintln(w, "\t\t\t")
	fmt.Fprintln(w, "ANIMALS [A]\tRADIUS\tSPEED\t")
	for i, at := range cat.Animals {
		fmt.Fprintf(w, "%s %s\t%.2f\t%.2f\t\n", selectKey(i), at.Name, at.Radius, at.Speed)
	}
	return w.Flush()
}

func selectKey(i int) string {
	if i < 9 {
		return fmt.Sprintf("[%d]", i+1)
	}
	return "[-]"
}
