package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/proteinlab/internal/llm"
	"github.com/rs/zerolog"
)

// ErrNoGenerator is the fallback reason when no credential was configured.
var ErrNoGenerator = errors.New("no text generator configured")

// Service hands out question sets. It never fails: generation errors are
// logged and replaced by the fallback set.
type Service struct {
	gen   Generator
	cache Cache
	cfg   Config
	log   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache stores AI-generated sets in c and serves repeats from it.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithConfig sets the count and validators applied to cached sets.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// NewService creates a Service. gen may be nil, in which case every call
// returns the fallback set.
func NewService(gen Generator, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{gen: gen, cfg: DefaultConfig(), log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Available reports whether a generator is configured.
func (s *Service) Available() bool {
	return s != nil && s.gen != nil
}

// Generate runs the generator and returns its raw outcome.
func (s *Service) Generate(ctx context.Context, topic string, d Difficulty) Result {
	if !s.Available() {
		return Result{Err: ErrNoGenerator}
	}
	qs, err := s.gen.Generate(ctx, topic, d)
	return Result{Questions: qs, Err: err}
}

// FetchQuestions returns a question set for topic and difficulty. A blank
// topic selects DefaultTopic. A nil Service serves the fallback set.
func (s *Service) FetchQuestions(ctx context.Context, topic string, d Difficulty) Batch {
	if s == nil {
		return Result{Err: ErrNoGenerator}.Resolve()
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}

	if qs, ok := s.cached(ctx, topic, d); ok {
		return Batch{Questions: qs, Source: SourceAI}
	}

	b := s.Generate(ctx, topic, d).Resolve()
	if b.Source == SourceFallback {
		switch {
		case b.Reason == nil, errors.Is(b.Reason, ErrNoGenerator):
		case ctx.Err() != nil:
			s.log.Debug().Err(b.Reason).Str("topic", topic).Msg("quiz generation abandoned")
		default:
			s.log.Warn().Err(b.Reason).Str("error_kind", string(llm.Classify(b.Reason))).
				Str("topic", topic).Str("difficulty", string(d)).
				Msg("quiz generation failed, serving fallback questions")
		}
		return b
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, topic, d, b.Questions); err != nil {
			s.log.Warn().Err(err).Str("topic", topic).Msg("quiz cache write failed")
		}
	}
	return b
}

// cached returns a cache hit only when it passes the same checks as a fresh
// set. Anything else counts as a miss and is overwritten on the next
// successful generation.
func (s *Service) cached(ctx context.Context, topic string, d Difficulty) ([]Question, bool) {
	if s.cache == nil {
		return nil, false
	}
	qs, ok, err := s.cache.Get(ctx, topic, d)
	if err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Msg("quiz cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	qs, err = s.cfg.Check(qs)
	if err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Str("difficulty", string(d)).
			Msg("discarding invalid cached question set")
		return nil, false
	}
	return qs, true
}
