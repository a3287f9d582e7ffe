package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ayoisaiah/simmer/internal/cooking"
)

const (
	sampleRate = beep.SampleRate(44100)
	bellFreq   = 880.0
	chimeLen   = 180 * time.Millisecond
	chimeGap   = 120 * time.Millisecond
)

var initSpeaker = sync.OnceValue(func() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
})

// Bell plays a short synthesised chime: two tones when a step ends and three
// when the recipe is done.
type Bell struct {
	play   func(chimes int) error
	logger *slog.Logger
}

// NewBell returns a bell that plays through the default audio device.
func NewBell(logger *slog.Logger) *Bell {
	return &Bell{
		play:   playChimes,
		logger: logger,
	}
}

func (b *Bell) Notify(evt cooking.Event) {
	var chimes int

	switch evt.Kind {
	case cooking.StepCompleted:
		chimes = 2
	case cooking.SessionComplete:
		chimes = 3
	default:
		return
	}

	if err := b.play(chimes); err != nil {
		b.logger.Error("unable to play bell", "error", err)
	}
}

var silence = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	clear(samples)
	return len(samples), true
})

// playChimes queues the chime on the speaker and returns without waiting for
// it to finish.
func playChimes(chimes int) error {
	if err := initSpeaker(); err != nil {
		return errSpeaker.Wrap(err)
	}

	tone, err := generators.SineTone(sampleRate, bellFreq)
	if err != nil {
		return err
	}

	streamers := make([]beep.Streamer, 0, chimes*2)

	for range chimes {
		streamers = append(
			streamers,
			beep.Take(sampleRate.N(chimeLen), tone),
			beep.Take(sampleRate.N(chimeGap), silence),
		)
	}

	speaker.Play(beep.Seq(streamers...))

	return nil
}
