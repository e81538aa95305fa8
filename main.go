package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"riktris/internal/audio"
	"riktris/internal/game"
	"riktris/internal/platform"
	"riktris/internal/scene"
	"riktris/internal/state"
	"riktris/internal/tui"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type config struct {
	opts     state.GameOptions
	mute     bool
	volume   float64
	frame    tui.Config
	debugLog string
}

func run(cfg config) error {
	if err := cfg.opts.Validate(); err != nil {
		return err
	}

	if cfg.debugLog != "" {
		f, err := tea.LogToFile(cfg.debugLog, "riktris")
		if err != nil {
			return fmt.Errorf("could not open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var sound platform.Audio = platform.NopAudio{}
	if !cfg.mute {
		player := audio.NewPlayer(cfg.volume)
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			if err := player.Preload(); err != nil {
				log.Printf("audio preload: %v", err)
			}
			sound = player
		}
	}

	keys := tui.DefaultKeyMap()
	keyboard := tui.NewKeyboard(keys)

	sess, err := game.NewSession(cfg.opts, keyboard, sound)
	if err != nil {
		return err
	}

	stack := &scene.Stack{}
	stack.Push(scene.NewTitle(stack, keyboard, func() scene.Scene {
		return scene.NewGameplay(stack, keyboard, sess)
	}))

	model := tui.NewModel(stack, keyboard, keys, cfg.frame)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	if sess.History.Attempts > 0 {
		fmt.Println(scoreStyle.Render(fmt.Sprintf("Best score this session: %d", sess.Best())))
	}
	return nil
}

// rangeIntFlag is an integer flag that must be given a value within bounds.
type rangeIntFlag struct {
	value    int
	min, max int
}

func (f *rangeIntFlag) String() string {
	return fmt.Sprint(f.value)
}

func (f *rangeIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < f.min || v > f.max {
		return fmt.Errorf("%d is outside %d..%d", v, f.min, f.max)
	}
	f.value = v
	return nil
}

func (f *rangeIntFlag) IsBoolFlag() bool { return true }

type seedFlag uint64

func (s *seedFlag) String() string {
	return fmt.Sprint(uint64(*s))
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q", v)
	}
	*s = seedFlag(n)
	return nil
}

func main() {
	defaults := state.DefaultOptions()
	frame := tui.DefaultConfig()

	level := rangeIntFlag{value: defaults.StartLevel, min: 1, max: state.MaxStartLevel}
	preview := rangeIntFlag{value: defaults.Preview, min: 0, max: state.MaxPreview}
	fps := rangeIntFlag{value: frame.FPS, min: 10, max: 240}
	var seed seedFlag
	var noGhost, mute bool
	var volume, maxDelta float64
	var debugLog string

	flag.Var(&level, "level", "Starting level")
	flag.Var(&level, "l", "Starting level (shorthand)")
	flag.Var(&seed, "seed", "Seed for the piece sequence (0 picks one from the clock)")
	flag.Var(&preview, "preview", "Number of upcoming pieces shown")
	flag.BoolVar(&noGhost, "no-ghost", false, "Hide the landing preview")
	flag.BoolVar(&mute, "mute", false, "Disable sound effects")
	flag.BoolVar(&mute, "m", false, "Disable sound effects (shorthand)")
	flag.Float64Var(&volume, "volume", -1, "Sound volume from -5 (silent) to 0 (full)")
	flag.Var(&fps, "fps", "Frames per second")
	flag.Float64Var(&maxDelta, "max-delta", frame.MaxDelta, "Longest frame step in seconds")
	flag.StringVar(&debugLog, "debug", "", "Write a debug log to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -l, --level=N        Starting level (1-%d)\n", state.MaxStartLevel)
		fmt.Fprintf(os.Stderr, "       --seed=N         Seed for the piece sequence\n")
		fmt.Fprintf(os.Stderr, "       --preview=N      Number of upcoming pieces shown (0-%d)\n", state.MaxPreview)
		fmt.Fprintf(os.Stderr, "       --no-ghost       Hide the landing preview\n")
		fmt.Fprintf(os.Stderr, "   -m, --mute           Disable sound effects\n")
		fmt.Fprintf(os.Stderr, "       --volume=V       Sound volume from -5 to 0\n")
		fmt.Fprintf(os.Stderr, "       --fps=N          Frames per second\n")
		fmt.Fprintf(os.Stderr, "       --max-delta=S    Longest frame step in seconds\n")
		fmt.Fprintf(os.Stderr, "       --debug=FILE     Write a debug log to FILE\n")
		fmt.Fprintf(os.Stderr, "   -h, --help           Show this help message\n")
	}

	flag.Parse()

	opts := defaults
	opts.StartLevel = level.value
	opts.Seed = uint64(seed)
	opts.Preview = preview.value
	opts.Ghost = !noGhost

	cfg := config{
		opts:     opts,
		mute:     mute,
		volume:   volume,
		frame:    tui.Config{FPS: fps.value, MaxDelta: maxDelta},
		debugLog: debugLog,
	}
	if err := run(cfg); err != nil {
		fmt.Println(redStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
