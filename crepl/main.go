package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// main() starts an interactive CLI ("C.REPL"), where users may enter commands
// operating on a span collection and a mutant stack. C.REPL will execute the
// command and print out the result.
//
func main() {
	initDisplay()
	confFile := flag.String("config", "", "Configuration file (YAML)")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	capacity := flag.Uint("capacity", 0, "Capacity of the span collection")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to C.REPL")
	//
	conf, err := LoadConfig(*confFile)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) { // flags override configuration
		switch f.Name {
		case "trace":
			conf.Trace = *tlevel
		case "capacity":
			conf.Capacity = *capacity
		}
	})
	setTraceLevel(tracing.TraceLevelFromString(conf.Trace))
	tracer().Infof("Trace level is %s", conf.Trace)
	tracer().Infof("Span collection has capacity %d", conf.Capacity)
	//
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      conf.Prompt,
		HistoryFile: conf.History,
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(conf.Capacity)
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	if !loadInitFile(intp, *initf) {    // init file name provided by flag
		REPL(intp, repl) // go into interactive mode
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// loadInitFile executes the commands of an init file, line by line.
// It returns true if the file asked to quit.
func loadInitFile(intp *Intp, filename string) bool {
	if filename == "" {
		return false
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := execAndPrint(intp, line)
		if err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		if quit {
			return true
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
	return false
}

// REPL starts interactive mode.
func REPL(intp *Intp, repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := execAndPrint(intp, line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

func execAndPrint(intp *Intp, line string) (bool, error) {
	out, quit, err := intp.Exec(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return quit, err
	}
	if out != "" {
		pterm.Info.Println(out)
	}
	return quit, nil
}
