// Bef CLI - a Befunge-93 interpreter with step-by-step terminal display
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/tliron/commonlog"

	"github.com/chazu/bef/befunge"
	"github.com/chazu/bef/config"
	"github.com/chazu/bef/render"
	"github.com/chazu/bef/trace"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("bef")

func main() {
	file := flag.String("f", "", "Path to program file")
	playfield := flag.Bool("playfield", false, "Print the playfield at each step")
	stack := flag.Bool("stack", false, "Print the stack at each step")
	traceMode := flag.Bool("trace", false, "Execute in trace mode")
	debug := flag.Bool("debug", false, "Run in debug mode; press enter to step")
	delay := flag.Int("delay", 0, "Delay between steps (in milliseconds)")
	seed := flag.Int64("seed", 0, "Seed for the ? command (0 seeds from the clock)")
	record := flag.String("record", "", "Record a step trace to the given file")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bef [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Befunge-93 program, redrawing selected panes after each step.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bef hello.bf                   # Run, showing output\n")
		fmt.Fprintf(os.Stderr, "  bef -playfield -stack hello.bf # Redraw grid and stack each step\n")
		fmt.Fprintf(os.Stderr, "  bef -trace -debug hello.bf     # Single-step with full state\n")
		fmt.Fprintf(os.Stderr, "  bef -record out.trace hello.bf # Record a step trace for beftrace\n")
		fmt.Fprintf(os.Stderr, "\nSettings may also be placed in %s; flags override it.\n", config.FileName)
	}

	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	cfg, err := config.Load(".")
	if err != nil {
		log.Errorf("%s", err.Error())
		os.Exit(1)
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "playfield":
			cfg.Display.Playfield = *playfield
		case "stack":
			cfg.Display.Stack = *stack
		case "trace":
			cfg.Run.Trace = *traceMode
		case "debug":
			cfg.Run.Debug = *debug
		case "delay":
			cfg.Run.Delay = *delay
		case "seed":
			cfg.Run.Seed = *seed
		}
	})

	path := *file
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("cannot open '%s': %s", path, err.Error())
		os.Exit(1)
	}

	in := befunge.New()
	err = in.Load(f)
	f.Close()
	if err != nil {
		log.Errorf("cannot load '%s': %s", path, err.Error())
		os.Exit(1)
	}
	if cfg.Run.Seed != 0 {
		in.SetRandSeed(cfg.Run.Seed)
	}
	log.Debugf("loaded '%s', seed=%d", path, cfg.Run.Seed)

	var recorder *trace.Recorder
	if *record != "" {
		w, err := os.Create(*record)
		if err != nil {
			log.Errorf("cannot create trace file: %s", err.Error())
			os.Exit(1)
		}
		defer w.Close()
		recorder = trace.NewRecorder(w)
	}

	r := render.New()
	fmt.Printf("Loaded:\n%s\n", r.Playfield(in))
	fmt.Println("Running program...")

	stdin := bufio.NewReader(os.Stdin)
	pause := func() {
		if cfg.Run.Debug {
			stdin.ReadString('\n')
		}
	}

	err = in.Run(func(in *befunge.Interpreter, n int) bool {
		if recorder != nil {
			x, y := in.Position()
			rec := trace.StepRecord{
				Step:    n,
				X:       x,
				Y:       y,
				Command: in.CurrentCommand().String(),
				Depth:   len(in.StackValues()),
				Output:  len(in.Output()),
			}
			if err := recorder.Record(rec); err != nil {
				log.Errorf("%s", err.Error())
				recorder = nil
			}
		}

		if cfg.Run.Trace {
			fmt.Printf("[%d] Next: %s\nStack: %s\nOutput: %s\n%s\n",
				n, in.CurrentCommand(), r.Stack(in.StackValues()), in.Output(),
				strings.Repeat("-", 60))
			pause()
			return true
		}

		termenv.ClearScreen()
		if cfg.Display.Playfield {
			fmt.Printf("Playfield:\n%s\n", r.Playfield(in))
		}
		if cfg.Display.Stack {
			fmt.Printf("Stack: %s\n", r.Stack(in.StackValues()))
		}
		fmt.Printf("Output:\n%s", in.Output())
		pause()

		if cfg.Run.Delay > 0 {
			time.Sleep(time.Duration(cfg.Run.Delay) * time.Millisecond)
		}
		return true
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nbef: %v\n%s\n", err, r.Playfield(in))
		os.Exit(1)
	}

	fmt.Println()
}
