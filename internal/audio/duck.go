package audio

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var percentRe = regexp.MustCompile(`(\d+)\s*%`)

type streamInfo struct {
	ID      int
	Volume  int
	AppName string
}

// Ducker lowers every PulseAudio stream except our own while the assistant
// speaks, and restores the original volumes afterwards.
type Ducker struct {
	mu        sync.Mutex
	active    bool
	selfNames []string    // application.name values left untouched
	original  map[int]int // stream id -> volume % before ducking
	minVolume int
}

func NewDucker(selfNames []string, minVolume int) *Ducker {
	if minVolume < 0 {
		minVolume = 0
	}
	return &Ducker{
		selfNames: append([]string(nil), selfNames...),
		original:  make(map[int]int),
		minVolume: minVolume,
	}
}

// Duck scales every foreign stream down to volume*factor, floored at
// minVolume. Calling it while already ducked is a no-op.
func (d *Ducker) Duck(ctx context.Context, factor float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active {
		return nil
	}

	streams, err := listStreams(ctx)
	if err != nil {
		return fmt.Errorf("list streams: %w", err)
	}

	d.original = make(map[int]int)
	for _, s := range streams {
		if d.isSelf(s) {
			continue
		}
		target := int(float64(s.Volume) * factor)
		if target < d.minVolume {
			target = d.minVolume
		}
		if err := setVolume(ctx, s.ID, target); err != nil {
			continue
		}
		d.original[s.ID] = s.Volume
	}

	d.active = true
	return nil
}

// Restore puts every ducked stream back to its pre-duck volume.
func (d *Ducker) Restore(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.active {
		return nil
	}
	for id, vol := range d.original {
		setVolume(ctx, id, vol)
	}
	d.original = make(map[int]int)
	d.active = false
	return nil
}

func (d *Ducker) isSelf(s streamInfo) bool {
	for _, name := range d.selfNames {
		if strings.EqualFold(s.AppName, name) {
			return true
		}
	}
	return false
}

func listStreams(ctx context.Context) ([]streamInfo, error) {
	out, err := exec.CommandContext(ctx, "pactl", "list", "sink-inputs").Output()
	if err != nil {
		return nil, err
	}

	var (
		streams []streamInfo
		cur     *streamInfo
	)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Sink Input #"):
			if cur != nil {
				streams = append(streams, *cur)
			}
			id, _ := strconv.Atoi(strings.TrimPrefix(line, "Sink Input #"))
			cur = &streamInfo{ID: id}
		case cur != nil && strings.HasPrefix(line, "Volume:"):
			if m := percentRe.FindStringSubmatch(line); m != nil {
				cur.Volume, _ = strconv.Atoi(m[1])
			}
		case cur != nil && strings.HasPrefix(line, "application.name"):
			if _, val, ok := strings.Cut(line, "="); ok {
				cur.AppName = strings.Trim(strings.TrimSpace(val), `"`)
			}
		}
	}
	if cur != nil {
		streams = append(streams, *cur)
	}
	return streams, nil
}

func setVolume(ctx context.Context, id, percent int) error {
	return exec.CommandContext(ctx, "pactl",
		"set-sink-input-volume", strconv.Itoa(id), fmt.Sprintf("%d%%", percent)).Run()
}
