// Beftrace - dumps a step trace recorded by bef -record
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tliron/commonlog"

	"github.com/chazu/bef/trace"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("beftrace")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: beftrace <file>\n\n")
		fmt.Fprintf(os.Stderr, "Prints the step records from a trace file written by bef -record.\n")
	}
	flag.Parse()

	commonlog.Configure(0, nil)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("cannot open '%s': %s", path, err.Error())
		os.Exit(1)
	}
	defer f.Close()

	records, err := trace.ReadAll(f)
	if err != nil {
		log.Errorf("cannot read '%s': %s", path, err.Error())
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tPOS\tNEXT\tDEPTH\tOUTPUT")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t(%d, %d)\t%q\t%d\t%d\n",
			rec.Step, rec.X, rec.Y, rec.Command, rec.Depth, rec.Output)
	}
	w.Flush()

	fmt.Printf("%d steps\n", len(records))
}
