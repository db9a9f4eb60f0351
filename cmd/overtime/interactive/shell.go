// Package interactive provides the interactive command-line interface
// for overtime.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/overtime-timer/overtime-go/pkg/collection"
	"github.com/overtime-timer/overtime-go/pkg/settings"
	"github.com/overtime-timer/overtime-go/pkg/timer"
)

// ErrUsage is returned for malformed command arguments.
var ErrUsage = errors.New("usage")

// Config wires the shell to the application.
type Config struct {
	// Manager owns the timers.
	Manager *collection.Manager

	// Prefs are the live display and alert preferences.
	Prefs *settings.Live

	// SaveSettings persists Prefs after a change. Optional.
	SaveSettings func() error

	// Location is used to read and print wall-clock times. Defaults to
	// time.Local.
	Location *time.Location
}

// Shell handles interactive mode.
type Shell struct {
	m            *collection.Manager
	prefs        *settings.Live
	saveSettings func() error
	loc          *time.Location
	out          io.Writer
	rl           *readline.Instance

	mu         sync.Mutex
	lastPrompt string
	closeOnce  sync.Once
}

// NewReadline creates the line editor used by the shell. It is created
// ahead of the shell so that alerts and logging can share its output.
func NewReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "overtime> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

// New creates a shell reading commands from rl.
func New(cfg Config, rl *readline.Instance) *Shell {
	s := newShell(cfg, rl.Stdout())
	s.rl = rl
	return s
}

func newShell(cfg Config, out io.Writer) *Shell {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Shell{
		m:            cfg.Manager,
		prefs:        cfg.Prefs,
		saveSettings: cfg.SaveSettings,
		loc:          loc,
		out:          out,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop. It returns when the user quits
// or ctx is done.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.close()

	s.printHelp()

	// Unblock Readline on shutdown.
	go func() {
		<-ctx.Done()
		s.close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Exec(line) {
			cancel()
			return
		}
	}
}

func (s *Shell) close() {
	s.closeOnce.Do(func() { s.rl.Close() })
}

// Exec runs one command line. It returns false when the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls", "l":
		s.cmdList()

	case "show", "s":
		s.cmdShow()

	case "add", "a":
		s.cmdAdd()

	case "delete", "del", "rm":
		err = s.cmdDelete(args)

	case "select", "sel":
		err = s.cmdSelect(args)

	case "next", "n":
		s.cmdNext()

	case "prev", "p":
		s.cmdPrev()

	case "pause", "resume", "toggle", "t":
		err = s.cmdToggle()

	case "edit", "e":
		err = s.cmdEdit(args)

	case "rename", "title":
		err = s.cmdRename(args)

	case "share":
		s.cmdShare()

	case "settings", "set":
		err = s.cmdSettings(args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Overtime Commands:
  Timers:
    list                         - List all timers
    show                         - Show the current timer
    add                          - Add a timer and select it
    delete [n]                   - Delete timer n (default: current)
    select <n>                   - Select timer n
    next | prev                  - Move the selection

  Current timer:
    pause                        - Pause or resume
    edit <date> <time> [title]   - Start counting to date (YYYY-MM-DD) and time (HH:MM)
    edit +<duration> [title]     - Start counting for a duration, e.g. +25m or +1h30m
    rename <title>               - Change the title
    share                        - Print a shareable description

  General:
    settings [name [on|off]]     - Show or change settings
    help                         - Show this help
    quit                         - Exit

  Timers are numbered from 1 as shown by 'list'.`)
}

func (s *Shell) formatOptions() timer.FormatOptions {
	return s.prefs.Get().FormatOptions(s.loc)
}

func (s *Shell) cmdList() {
	_, current := s.m.Current()
	WriteList(s.out, s.m.Timers(), current, s.m.Now(), s.formatOptions())
}

// WriteList prints one line per timer, marking the current one.
func WriteList(w io.Writer, ts []timer.Timer, current int, now int64, opts timer.FormatOptions) {
	for i, t := range ts {
		marker := " "
		if i == current {
			marker = "*"
		}
		line := fmt.Sprintf("%s %2d. %-20s %12s", marker, i+1, t.Title, timer.Calculate(now, &t).String())
		if status := timer.StatusText(&t, now, opts); status != "" {
			line += "  " + status
		}
		fmt.Fprintln(w, line)
	}
}

func (s *Shell) cmdShow() {
	t, idx := s.m.Current()
	now := s.m.Now()
	d := timer.Calculate(now, &t)

	fmt.Fprintf(s.out, "Timer %d of %d: %s\n", idx+1, s.m.Len(), t.Title)
	if d.IsOvertime {
		fmt.Fprintf(s.out, "  Overtime:  %s\n", d.String())
	} else {
		fmt.Fprintf(s.out, "  Remaining: %s\n", d.String())
	}
	if status := timer.StatusText(&t, now, s.formatOptions()); status != "" {
		fmt.Fprintf(s.out, "  %s\n", status)
	}
}

func (s *Shell) cmdAdd() {
	s.m.Add()
	fmt.Fprintf(s.out, "Added timer %d\n", s.m.Index()+1)
}

func (s *Shell) cmdDelete(args []string) error {
	if len(args) == 0 {
		s.m.DeleteCurrent()
	} else {
		idx, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if err := s.m.Delete(idx); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "Deleted. %d timer(s) left, current is %d\n", s.m.Len(), s.m.Index()+1)
	return nil
}

func (s *Shell) cmdSelect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: select <n>", ErrUsage)
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if err := s.m.Select(idx); err != nil {
		return err
	}
	s.cmdShow()
	return nil
}

func (s *Shell) cmdNext() {
	if !s.m.Next() {
		fmt.Fprintln(s.out, "Already at the last timer")
		return
	}
	s.cmdShow()
}

func (s *Shell) cmdPrev() {
	if !s.m.Prev() {
		fmt.Fprintln(s.out, "Already at the first timer")
		return
	}
	s.cmdShow()
}

func (s *Shell) cmdToggle() error {
	if err := s.m.ToggleCurrent(); err != nil {
		return err
	}
	t, _ := s.m.Current()
	if t.IsRunning {
		fmt.Fprintln(s.out, "Resumed")
	} else {
		fmt.Fprintln(s.out, "Paused")
	}
	return nil
}

func (s *Shell) cmdEdit(args []string) error {
	target, rest, err := s.parseTarget(args)
	if err != nil {
		return err
	}

	title := strings.Join(rest, " ")
	if title == "" {
		cur, _ := s.m.Current()
		title = cur.Title
	}

	if err := s.m.EditCurrent(title, target); err != nil {
		return err
	}
	s.cmdShow()
	return nil
}

// parseTarget reads either "+<duration>" or "<date> <time>" from args and
// returns the target plus the remaining arguments.
func (s *Shell) parseTarget(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: edit <date> <time> [title] | edit +<duration> [title]", ErrUsage)
	}

	if strings.HasPrefix(args[0], "+") {
		d, err := time.ParseDuration(args[0][1:])
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %v", timer.ErrInvalidTarget, err)
		}
		return s.m.Now() + d.Milliseconds(), args[1:], nil
	}

	if len(args) < 2 {
		return 0, nil, fmt.Errorf("%w: edit <date> <time> [title]", ErrUsage)
	}
	target, err := timer.ParseTarget(args[0], args[1], s.loc)
	if err != nil {
		return 0, nil, err
	}
	return target, args[2:], nil
}

func (s *Shell) cmdRename(args []string) error {
	if err := s.m.Rename(s.m.Index(), strings.Join(args, " ")); err != nil {
		return err
	}
	t, _ := s.m.Current()
	fmt.Fprintf(s.out, "Renamed to %q\n", t.Title)
	return nil
}

func (s *Shell) cmdShare() {
	t, _ := s.m.Current()
	fmt.Fprintln(s.out, timer.ShareText(&t, s.formatOptions()))
}

func (s *Shell) cmdSettings(args []string) error {
	if len(args) == 0 {
		current := s.prefs.Get().Map()
		for _, name := range settings.Names() {
			fmt.Fprintf(s.out, "  %-12s %s\n", name, onOff(current[name]))
		}
		return nil
	}

	name := args[0]
	var value bool
	err := s.prefs.Update(func(st *settings.Settings) error {
		if len(args) == 1 {
			v, err := st.Toggle(name)
			value = v
			return err
		}
		v, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		value = v
		return st.Set(name, v)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s is %s\n", name, onOff(value))
	if s.saveSettings != nil {
		if err := s.saveSettings(); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	return nil
}

// HandleFrame reports completed timers and keeps the prompt showing the
// current countdown. It is meant to be the driver sink.
func (s *Shell) HandleFrame(f collection.Frame) {
	opts := s.formatOptions()
	for _, t := range f.Notified {
		fmt.Fprintf(s.out, "\n*** %s is up (%s)\n", t.Title, timer.FormatTime(t.TargetTime, opts))
	}

	prompt := Prompt(f)

	s.mu.Lock()
	changed := prompt != s.lastPrompt
	s.lastPrompt = prompt
	s.mu.Unlock()

	if changed && s.rl != nil {
		s.rl.SetPrompt(prompt)
		s.rl.Refresh()
	}
}

// Prompt renders the prompt for a frame, e.g. "[2/3 Tea 0:03:59] > ".
func Prompt(f collection.Frame) string {
	state := ""
	if f.Timer.IsPaused() {
		state = " paused"
	}
	return fmt.Sprintf("[%d/%d %s %s%s] > ", f.Index+1, f.Count, f.Timer.Title, f.Display.String(), state)
}

// parseIndex converts a 1-based user index to a 0-based one.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timer number %q", ErrUsage, s)
	}
	return n - 1, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", ErrUsage, s)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
