package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/vancomm/arcade-mines/internal/config"
)

type PresetsCmd struct{}

func (c *PresetsCmd) Run(g *Globals) error {
	a, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	return listPresets(os.Stdout, a.config)
}

func listPresets(out io.Writer, cfg *config.Config) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOLUMNS\tROWS\tMINES\tSEED")
	for _, b := range cfg.Boards {
		name := b.Name
		if name == cfg.DefaultBoard {
			name += " *"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			name, b.Columns, b.Rows, b.Mines, b.Params().Seed())
	}
	return w.Flush()
}
