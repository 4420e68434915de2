package correct

import (
	"fmt"

	"github.com/rs/zerolog"

	"nmeatrack/internal/gps"
)

// Options tunes the corrector. The zero value reproduces the reference
// behaviour with the "GP" talker and no logging.
type Options struct {
	// Talker selects which "$<talker>GSV" and "$<talker>RMC" sentences are used.
	Talker string
	// FillGap emits receiver 1's position when receiver 1 has a good fix but
	// receiver 2 does not. Off by default, in which case nothing is emitted.
	FillGap bool
	// Hemisphere reads the N/S and E/W indicator fields instead of assuming
	// a north-western position.
	Hemisphere bool

	Logger *zerolog.Logger
}

// Stats counts what happened during a run.
type Stats struct {
	PrimaryLines   int
	SecondaryLines int

	SyncPoints       int
	Raw              int
	Corrected        int
	Filled           int
	Skipped          int
	OffsetsLearned   int
	Receiver1Reports int
	Receiver2Reports int
}

// Corrector walks the primary stream and pulls the matching parts of the
// secondary stream on demand. It is not safe for concurrent use.
type Corrector struct {
	primary   *Stream
	secondary *Stream
	opts      Options
	log       zerolog.Logger

	state State
	stats Stats
}

func New(primary, secondary *Stream, opts Options) *Corrector {
	if opts.Talker == "" {
		opts.Talker = gps.DefaultTalker
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Corrector{
		primary:   primary,
		secondary: secondary,
		opts:      opts,
		log:       logger,
		state:     NewState(),
	}
}

// State returns a copy of the current correction state.
func (c *Corrector) State() State { return c.state }

func (c *Corrector) Stats() Stats {
	s := c.stats
	s.PrimaryLines = c.primary.Lines()
	s.SecondaryLines = c.secondary.Lines()
	return s
}

// Run consumes the primary stream to the end and returns every emitted
// position in primary-stream order. Any error aborts the run; positions
// collected so far are discarded.
func (c *Corrector) Run() ([]gps.Position, error) {
	out := make([]gps.Position, 0, 1024)
	for {
		pos, d, done, err := c.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		if d != DecisionNone {
			out = append(out, pos)
		}
	}
}

// Step processes one primary-stream line. done is true once the primary
// stream is exhausted.
func (c *Corrector) Step() (pos gps.Position, d Decision, done bool, err error) {
	line, ok, err := c.primary.Next()
	if err != nil {
		return gps.Position{}, DecisionNone, false, err
	}
	if !ok {
		return gps.Position{}, DecisionNone, true, nil
	}

	switch gps.Classify(line, c.opts.Talker) {
	case gps.KindGSV:
		good, err := c.readReport(c.primary, line)
		if err != nil {
			return gps.Position{}, DecisionNone, false, err
		}
		c.state.Receiver1Good = good
		c.stats.Receiver1Reports++
		c.log.Debug().Int("line", c.primary.Lines()).Bool("good_fix", good).Msg("receiver 1 fix report")
		return gps.Position{}, DecisionNone, false, nil

	case gps.KindRMC:
		p1, err := gps.ParsePosition(gps.Tokenize(line), c.opts.Hemisphere)
		if err != nil {
			return gps.Position{}, DecisionNone, false, c.wrap(c.primary, err)
		}
		p2, err := c.pullSecondary()
		if err != nil {
			return gps.Position{}, DecisionNone, false, err
		}

		c.stats.SyncPoints++
		pos, d = Decide(&c.state, &p1, &p2, c.opts.FillGap)
		switch d {
		case DecisionRaw:
			c.stats.Raw++
			c.stats.OffsetsLearned++
		case DecisionCorrected:
			c.stats.Corrected++
		case DecisionFilled:
			c.stats.Filled++
		default:
			c.stats.Skipped++
		}
		c.log.Debug().
			Int("line", c.primary.Lines()).
			Str("decision", d.String()).
			Bool("r1_good", c.state.Receiver1Good).
			Bool("r2_good", c.state.Receiver2Good).
			Float64("lat_offset", c.state.LatOffset).
			Float64("lon_offset", c.state.LonOffset).
			Msg("sync point")
		return pos, d, false, nil

	default:
		return gps.Position{}, DecisionNone, false, nil
	}
}

// pullSecondary advances the secondary stream to its next position sentence.
// A fix report met on the way updates receiver 2's state; any further reports
// before the position are skipped unevaluated.
func (c *Corrector) pullSecondary() (gps.Position, error) {
	var line string
	var kind gps.Kind
	for {
		l, err := c.secondary.Need()
		if err != nil {
			return gps.Position{}, err
		}
		kind = gps.Classify(l, c.opts.Talker)
		if kind == gps.KindGSV || kind == gps.KindRMC {
			line = l
			break
		}
	}

	if kind == gps.KindGSV {
		good, err := c.readReport(c.secondary, line)
		if err != nil {
			return gps.Position{}, err
		}
		c.state.Receiver2Good = good
		c.stats.Receiver2Reports++
		c.log.Debug().Int("line", c.secondary.Lines()).Bool("good_fix", good).Msg("receiver 2 fix report")

		for {
			line, err = c.secondary.Need()
			if err != nil {
				return gps.Position{}, err
			}
			if gps.Classify(line, c.opts.Talker) == gps.KindRMC {
				break
			}
		}
	}

	p2, err := gps.ParsePosition(gps.Tokenize(line), c.opts.Hemisphere)
	if err != nil {
		return gps.Position{}, c.wrap(c.secondary, err)
	}
	return p2, nil
}

// readReport assembles a GSV report starting at first, reading as many
// further lines from st as the first sentence declares.
func (c *Corrector) readReport(st *Stream, first string) (bool, error) {
	head, err := gps.ParseFixGroup(gps.Tokenize(first))
	if err != nil {
		return false, c.wrap(st, err)
	}
	// The declared count is untrusted; let the stream run dry instead of
	// preallocating from it.
	groups := []gps.FixGroup{head}
	for i := 1; i < head.DeclaredCount; i++ {
		line, err := st.Need()
		if err != nil {
			return false, err
		}
		g, err := gps.ParseFixGroup(gps.Tokenize(line))
		if err != nil {
			return false, c.wrap(st, err)
		}
		groups = append(groups, g)
	}
	return gps.IsGoodFix(groups), nil
}

func (c *Corrector) wrap(st *Stream, err error) error {
	return fmt.Errorf("%s line %d: %w", st.Name(), st.Lines(), err)
}
