// Package solver answers word-ladder questions over a dictionary: it builds
// the one-letter graph once and then serves any number of concurrent
// Solve, Neighbors and Reach calls against it.
//
// Words cross this boundary as text. Input is trimmed and lowercased, then
// checked for length and dictionary membership; failures are coded
// *errors.WeaverError values whose Message is fit for the terminal.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/katalvlaran/weaver/bfs"
	"github.com/katalvlaran/weaver/builder"
	"github.com/katalvlaran/weaver/core"
	"github.com/katalvlaran/weaver/dfs"
	"github.com/katalvlaran/weaver/dictionary"
	werrors "github.com/katalvlaran/weaver/internal/errors"
	"github.com/katalvlaran/weaver/internal/logging"
	"github.com/katalvlaran/weaver/internal/metrics"
)

// User-facing messages for rejected words.
const (
	msgUnknownWord = "Words must be valid english words"
	msgEmptyDict   = "The dictionary is empty"
)

var validate = validator.New()

// Solver holds a dictionary, its frozen graph and component partition.
// All methods are safe for concurrent use.
type Solver struct {
	dict      *dictionary.Dictionary
	graph     *core.Graph
	parts     *dfs.Partition
	cfg       config
	buildTime time.Duration
}

// Solution is the answer to one Solve call.
type Solution struct {
	// ID identifies the query in logs.
	ID string

	Start, End string

	// Words is the ladder from Start to End inclusive; nil when not Found.
	Words []string

	Found bool

	// Hops is len(Words)-1, or -1 when not Found.
	Hops int

	// Visited counts words the search discovered. A search rejected up
	// front because the words lie in different components visits none.
	Visited int

	Elapsed time.Duration
}

// New builds the word graph and component partition for dict.
func New(ctx context.Context, dict *dictionary.Dictionary, opts ...Option) (*Solver, error) {
	if dict == nil {
		return nil, werrors.New(werrors.ErrInvalidInput, "dictionary is nil")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	done := logging.LogOperationStart(cfg.logger, "build")
	start := time.Now()

	bopts := []builder.BuilderOption{
		builder.WithContext(ctx),
		builder.WithWorkers(cfg.workers),
	}
	if cfg.progress != nil {
		bopts = append(bopts, builder.WithProgress(cfg.progress))
	}
	g, err := builder.Build(dict, bopts...)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.ErrGraphBuild, "failed to build word graph")
	}
	parts, err := dfs.Components(g, dfs.WithContext(ctx))
	if err != nil {
		return nil, werrors.Wrap(err, werrors.ErrGraphBuild, "failed to partition word graph")
	}

	s := &Solver{
		dict:      dict,
		graph:     g,
		parts:     parts,
		cfg:       cfg,
		buildTime: time.Since(start),
	}
	done()

	cfg.metrics.ObserveBuild(s.buildTime, g.Order(), g.Size())
	cfg.logger.Info().
		Int("words", g.Order()).
		Int("edges", g.Size()).
		Int("components", parts.Count()).
		Dur("elapsed", s.buildTime).
		Msg("Word graph ready")

	return s, nil
}

// Dictionary returns the dictionary the solver was built over.
func (s *Solver) Dictionary() *dictionary.Dictionary { return s.dict }

// Graph returns the frozen word graph.
func (s *Solver) Graph() *core.Graph { return s.graph }

// Components returns the connected-component partition of the graph.
func (s *Solver) Components() *dfs.Partition { return s.parts }

// Metrics returns the instruments the solver records into.
func (s *Solver) Metrics() *metrics.Metrics { return s.cfg.metrics }

// Solve finds a shortest ladder from start to end. A missing ladder is a
// Solution with Found == false, not an error.
//
// Errors: WORD_LENGTH and UNKNOWN_WORD for bad input, SEARCH for timeout,
// cancellation or depth misconfiguration.
func (s *Solver) Solve(ctx context.Context, start, end string) (*Solution, error) {
	began := time.Now()
	sol := &Solution{
		ID:    uuid.NewString(),
		Start: normalize(start),
		End:   normalize(end),
		Hops:  -1,
	}
	log := s.cfg.logger.With().Str("query", sol.ID).Logger()

	si, err := s.resolve(sol.Start)
	if err != nil {
		return nil, err
	}
	ei, err := s.resolve(sol.End)
	if err != nil {
		return nil, err
	}

	if !s.parts.Same(si, ei) {
		sol.Elapsed = time.Since(began)
		s.cfg.metrics.ObserveSearch(sol.Elapsed, 0, metrics.ResultUnreachable)
		log.Debug().Str("start", sol.Start).Str("end", sol.End).Msg("Words lie in different components")
		return sol, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := bfs.ShortestPath(s.graph, si, ei, s.searchOptions(ctx)...)
	sol.Elapsed = time.Since(began)
	if err != nil {
		s.cfg.metrics.ObserveSearch(sol.Elapsed, 0, metrics.ResultError)
		return nil, searchError(err, sol.Start, sol.End)
	}

	sol.Found = res.Found
	sol.Visited = res.Visited
	result := metrics.ResultUnreachable
	if res.Found {
		result = metrics.ResultFound
		sol.Hops = res.Hops
		if sol.Words, err = s.dict.Lookup(res.Path()); err != nil {
			return nil, werrors.Wrap(err, werrors.ErrInternal, "path references unknown word")
		}
	}
	s.cfg.metrics.ObserveSearch(sol.Elapsed, sol.Visited, result)

	log.Debug().
		Str("start", sol.Start).
		Str("end", sol.End).
		Bool("found", sol.Found).
		Int("hops", sol.Hops).
		Int("visited", sol.Visited).
		Dur("elapsed", sol.Elapsed).
		Msg("Search finished")

	return sol, nil
}

// Neighbors returns the words one letter away from word, in adjacency order.
func (s *Solver) Neighbors(word string) ([]string, error) {
	i, err := s.resolve(normalize(word))
	if err != nil {
		return nil, err
	}
	nbrs, err := s.graph.Neighbors(i)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.ErrInternal, "graph lookup failed")
	}
	return s.dict.Lookup(nbrs)
}

// Reach returns the words within depth steps of word, grouped by distance:
// layer 0 holds word itself. depth 0 walks the whole component.
func (s *Solver) Reach(ctx context.Context, word string, depth int) ([][]string, error) {
	if err := validate.Var(depth, "gte=0"); err != nil {
		return nil, werrors.Wrapf(err, werrors.ErrInvalidInput, "depth must not be negative, got %d", depth)
	}
	word = normalize(word)
	i, err := s.resolve(word)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := bfs.BFS(s.graph, i, bfs.WithContext(ctx), bfs.WithMaxDepth(depth))
	if err != nil {
		return nil, searchError(err, word, "")
	}

	var layers [][]string
	for _, v := range res.Order {
		d := res.Depth[v]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], s.dict.MustWord(v))
	}
	return layers, nil
}

// Stats summarizes the graph.
type Stats struct {
	Words       int
	WordLen     int
	Edges       int
	Components  int
	Largest     int
	Isolated    int
	MaxDegree   int
	MaxDegreeOf string
	BuildTime   time.Duration
}

// Stats reports graph size and shape.
func (s *Solver) Stats() Stats {
	st := Stats{
		Words:      s.graph.Order(),
		WordLen:    s.dict.WordLen(),
		Edges:      s.graph.Size(),
		Components: s.parts.Count(),
		Isolated:   len(s.parts.Isolated()),
		BuildTime:  s.buildTime,
	}
	_, st.Largest = s.parts.Largest()
	for v := 0; v < s.graph.Order(); v++ {
		if d, _ := s.graph.Degree(v); d > st.MaxDegree {
			st.MaxDegree = d
			st.MaxDegreeOf = s.dict.MustWord(v)
		}
	}
	return st
}

// resolve validates a normalized word and returns its index.
func (s *Solver) resolve(word string) (int, error) {
	if s.dict.Len() == 0 {
		return -1, werrors.New(werrors.ErrInvalidInput, msgEmptyDict)
	}
	n := s.dict.WordLen()
	if err := validate.Var(word, fmt.Sprintf("len=%d", n)); err != nil {
		return -1, werrors.Wrap(err, werrors.ErrWordLength, lengthMessage(n)).
			WithDetail("word", word)
	}
	i, ok := s.dict.Index(word)
	if !ok {
		return -1, werrors.New(werrors.ErrUnknownWord, msgUnknownWord).
			WithDetail("word", word)
	}
	return i, nil
}

func (s *Solver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Solver) searchOptions(ctx context.Context) []bfs.Option {
	return []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(s.cfg.maxDepth),
	}
}

func searchError(err error, start, end string) error {
	msg := "search failed"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "search timed out"
	case errors.Is(err, context.Canceled):
		msg = "search canceled"
	}
	return werrors.Wrap(err, werrors.ErrSearch, msg).
		WithDetail("start", start).
		WithDetail("end", end)
}

// normalize trims surrounding space and lowercases.
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// lengthMessage returns "Words must be four letters long" for n == 4.
func lengthMessage(n int) string {
	count := fmt.Sprint(n)
	if n < len(numberWords) {
		count = numberWords[n]
	}
	letters := "letters"
	if n == 1 {
		letters = "letter"
	}
	return fmt.Sprintf("Words must be %s %s long", count, letters)
}
