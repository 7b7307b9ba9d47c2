package mask

import (
	"errors"
	"fmt"

	"github.com/automoto/domemask/shared/gamemath"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingCollaborator is returned when a required dependency is nil.
	ErrMissingCollaborator = errors.New("mask: missing collaborator")
	// ErrInvalidConfig is returned for unusable uniform names or margins.
	ErrInvalidConfig = errors.New("mask: invalid config")
)

// Config names the shader globals the synchronizer writes.
type Config struct {
	PositionUniform string
	RadiusUniform   string
	FeatureKeyword  string
	Margin          float32
}

// Validate checks that every name is set and the margin is not negative.
func (c Config) Validate() error {
	switch {
	case c.PositionUniform == "":
		return fmt.Errorf("%w: empty position uniform name", ErrInvalidConfig)
	case c.RadiusUniform == "":
		return fmt.Errorf("%w: empty radius uniform name", ErrInvalidConfig)
	case c.FeatureKeyword == "":
		return fmt.Errorf("%w: empty feature keyword", ErrInvalidConfig)
	case c.Margin < 0:
		return fmt.Errorf("%w: negative margin %v", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// Synchronizer pushes mask parameters derived from a transform source into a
// sink. Center and radius are always written together.
type Synchronizer struct {
	cfg    Config
	sink   Sink
	source TransformSource
	log    logrus.FieldLogger

	resolved   bool
	positionID int
	radiusID   int

	enabled bool

	// last is the transform observed by the previous push; stale forces
	// the next SyncIfChanged to push regardless.
	last   gamemath.Transform
	stale  bool
	params Params
}

// New builds a synchronizer. It fails fast on nil collaborators and
// invalid config.
func New(cfg Config, sink Sink, source TransformSource, log logrus.FieldLogger) (*Synchronizer, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: sink", ErrMissingCollaborator)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: transform source", ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Synchronizer{
		cfg:    cfg,
		sink:   sink,
		source: source,
		log:    log.WithField("component", "mask"),
		stale:  true,
	}, nil
}

// Initialize resolves the uniform ids and pushes the current transform.
// The ids are resolved only on the first call.
func (s *Synchronizer) Initialize() {
	if !s.resolved {
		s.positionID = s.sink.ResolveID(s.cfg.PositionUniform)
		s.radiusID = s.sink.ResolveID(s.cfg.RadiusUniform)
		s.resolved = true
		s.log.WithFields(logrus.Fields{
			"position": s.cfg.PositionUniform,
			"radius":   s.cfg.RadiusUniform,
		}).Debug("resolved mask uniforms")
	}
	s.pushTransform(s.source.Transform())
}

// EnableFeature turns the mask keyword on. Repeated calls do nothing.
func (s *Synchronizer) EnableFeature() {
	if s.enabled {
		return
	}
	s.sink.EnableKeyword(s.cfg.FeatureKeyword)
	s.enabled = true
}

// DisableFeature turns the mask keyword off. Repeated calls do nothing.
func (s *Synchronizer) DisableFeature() {
	if !s.enabled {
		return
	}
	s.sink.DisableKeyword(s.cfg.FeatureKeyword)
	s.enabled = false
}

// FeatureEnabled reports the keyword state last written by s.
func (s *Synchronizer) FeatureEnabled() bool {
	return s.enabled
}

// SyncIfChanged pushes new parameters when the source transform differs
// from the one seen by the previous push. It reports whether it pushed.
func (s *Synchronizer) SyncIfChanged() bool {
	t := s.source.Transform()
	if !s.stale && t.Equal(s.last) {
		return false
	}
	s.pushTransform(t)
	return !s.stale
}

// Reset pushes a zero mask (origin, radius 0). The next SyncIfChanged
// pushes the real transform again.
func (s *Synchronizer) Reset() {
	s.push(Params{})
	s.stale = true
}

// SetMargin changes the radius margin; the next SyncIfChanged pushes.
func (s *Synchronizer) SetMargin(margin float32) {
	if margin < 0 || margin == s.cfg.Margin {
		return
	}
	s.cfg.Margin = margin
	s.stale = true
}

// Params returns the parameters last pushed.
func (s *Synchronizer) Params() Params {
	return s.params
}

func (s *Synchronizer) pushTransform(t gamemath.Transform) {
	if !s.push(ParamsFor(t, s.cfg.Margin)) {
		return
	}
	s.last = t
	s.stale = false
}

func (s *Synchronizer) push(p Params) bool {
	if !s.resolved {
		// Nothing to write to before Initialize.
		return false
	}
	s.sink.SetVector(s.positionID, p.Center)
	s.sink.SetFloat(s.radiusID, p.Radius)
	s.params = p
	return true
}
