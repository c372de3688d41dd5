package main

import (
	"fmt"
	"os"
	"time"

	"fortio.org/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arfen-dev/timerunner"
	"github.com/arfen-dev/timerunner/world"
)

// endedRecord is the YAML shape an Ended event is emitted as on stdout.
type endedRecord struct {
	SessionID string `yaml:"session_id"`
	Runner    string `yaml:"runner"`
	Direction string `yaml:"direction"`
	Completed bool   `yaml:"completed"`
}

func buildWorld(cfg *Config) (*world.World, map[world.RunnerID]string, error) {
	w := world.New()
	names := make(map[world.RunnerID]string, len(cfg.Runners))

	for _, rc := range cfg.Runners {
		runner := timerunner.New(time.Duration(rc.LengthSeconds * float64(time.Second)))
		if rc.Direction == "backward" {
			runner.SetDirection(timerunner.Backward)
		}
		if rc.TimeScale != 0 {
			runner.SetTimeScale(rc.TimeScale)
		} else {
			runner.SetTimeScale(1)
		}
		if rc.Repeat != nil {
			var repeat timerunner.Repeat
			switch rc.Repeat.Kind {
			case "times":
				repeat = timerunner.Times(rc.Repeat.Limit)
			case "infinitely_counted":
				repeat = timerunner.InfinitelyCounted()
			default:
				repeat = timerunner.Infinitely()
			}
			style := timerunner.WrapAround
			if rc.Repeat.Style == "ping_pong" {
				style = timerunner.PingPong
			}
			runner.SetRepeat(&timerunner.RunnerRepeat{Repeat: repeat, Style: style})
		}

		id := w.AddRunner(runner)
		names[id] = rc.Name

		for _, sc := range rc.Spans {
			minKind := timerunner.BoundExclusive
			if sc.MinInclusive {
				minKind = timerunner.BoundInclusive
			}
			maxKind := timerunner.BoundExclusive
			if sc.MaxInclusive {
				maxKind = timerunner.BoundInclusive
			}
			span, err := timerunner.NewTimeSpan(
				timerunner.TimeBound{Kind: minKind, Duration: time.Duration(sc.MinSeconds * float64(time.Second))},
				timerunner.TimeBound{Kind: maxKind, Duration: time.Duration(sc.MaxSeconds * float64(time.Second))},
			)
			if err != nil {
				return nil, nil, fmt.Errorf("runner %q span %q: %w", rc.Name, sc.Name, err)
			}
			w.AttachSpan(id, span)
		}
	}

	return w, names, nil
}

// Run drives cfg's timeline for cfg.Frames frames of cfg.TickRate each,
// logging progress and emitting Ended events as YAML documents on stdout.
func Run(cfg *Config) error {
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	log.Infof("timedrive: starting session %s (%d frames at %v)", cfg.SessionID, cfg.Frames, cfg.TickRate)

	w, names, err := buildWorld(cfg)
	if err != nil {
		log.Errf("timedrive: failed to build timeline: %v", err)
		return err
	}

	dispatcher := timerunner.NewDispatcher()
	deltaSeconds := cfg.TickRate.Seconds()
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()

	for frame := 0; frame < cfg.Frames; frame++ {
		timerunner.TickPass(w, deltaSeconds)
		dispatcher.Run(w)

		for _, e := range w.Ended() {
			if cfg.Quiet {
				continue
			}
			rec := endedRecord{
				SessionID: cfg.SessionID,
				Runner:    names[e.Runner],
				Direction: e.Direction.String(),
				Completed: e.IsCompleted(),
			}
			if err := enc.Encode(rec); err != nil {
				log.Warnf("timedrive: failed to encode Ended event: %v", err)
			}
		}
	}

	log.Infof("timedrive: session %s finished", cfg.SessionID)
	return nil
}
