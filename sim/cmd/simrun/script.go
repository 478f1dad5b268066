package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/scroller/shared/intent"
)

var errBadScript = errors.New("bad input script")

// segment holds one set of actions for a number of ticks.
type segment struct {
	actions [intent.ActionCount]bool
	ticks   int
}

// script is a parsed input script such as "right*60,right+jump*1,idle*30".
type script []segment

var actionNames = map[string]intent.Action{
	"left":  intent.ActionMoveLeft,
	"right": intent.ActionMoveRight,
	"jump":  intent.ActionJump,
	"idle":  intent.ActionNone,
}

func parseScript(s string) (script, error) {
	var out script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		names, count, ok := strings.Cut(part, "*")
		ticks := 1
		if ok {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: segment %q: tick count must be a positive integer", errBadScript, part)
			}
			ticks = n
		}

		seg := segment{ticks: ticks}
		for _, name := range strings.Split(names, "+") {
			a, known := actionNames[strings.ToLower(strings.TrimSpace(name))]
			if !known {
				return nil, fmt.Errorf("%w: segment %q: unknown action %q", errBadScript, part, name)
			}
			if a != intent.ActionNone {
				seg.actions[a] = true
			}
		}
		out = append(out, seg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty", errBadScript)
	}
	return out, nil
}

// ticks returns the total length of the script.
func (s script) ticks() int {
	n := 0
	for _, seg := range s {
		n += seg.ticks
	}
	return n
}

// at returns the actions held on tick t, counting from 0. Past the end the
// last segment repeats.
func (s script) at(t int) [intent.ActionCount]bool {
	for _, seg := range s {
		if t < seg.ticks {
			return seg.actions
		}
		t -= seg.ticks
	}
	return s[len(s)-1].actions
}

// apply writes the actions for tick t into the input state.
func (s script) apply(state *intent.State, t int) {
	actions := s.at(t)
	for a := intent.ActionNone + 1; a < intent.ActionCount; a++ {
		state.Set(a, actions[a])
	}
}
