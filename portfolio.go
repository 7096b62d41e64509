package finpulse

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/etnz/finpulse/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultKey is the store key holding the positions.
	DefaultKey = "portfolio"
	// DefaultTimeout bounds every store call.
	DefaultTimeout = 5 * time.Second
)

// Portfolio is the authoritative list of positions, backed by a store.
//
// Writes (Load, AddPosition, UpdatePrice, Reset) are serialized: a write
// arriving while another is in flight waits for it to complete, or gives up
// with a PersistenceError when its context ends first. Reads never wait on
// the store and always see the last successfully persisted list.
type Portfolio struct {
	store    store.Store
	key      string
	timeout  time.Duration
	pricer   Pricer
	classify Classifier
	newID    func() string
	log      zerolog.Logger

	writes *semaphore.Weighted // at most one write cycle in flight

	mu        sync.RWMutex
	positions []Position
}

// Option configures a Portfolio.
type Option func(*Portfolio)

// WithPricer replaces the random price simulation.
func WithPricer(p Pricer) Option { return func(pf *Portfolio) { pf.pricer = p } }

// WithClassifier replaces the random sector assignment.
func WithClassifier(c Classifier) Option { return func(pf *Portfolio) { pf.classify = c } }

// WithIDs replaces the UUID generator for new positions.
func WithIDs(newID func() string) Option { return func(pf *Portfolio) { pf.newID = newID } }

// WithTimeout bounds each store call.
func WithTimeout(d time.Duration) Option { return func(pf *Portfolio) { pf.timeout = d } }

// WithLogger sets the logger, the default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(pf *Portfolio) { pf.log = l } }

// WithKey changes the store key.
func WithKey(key string) Option { return func(pf *Portfolio) { pf.key = key } }

// New creates an empty Portfolio persisted in 'st'. Call Load to restore the
// persisted positions.
func New(st store.Store, opts ...Option) *Portfolio {
	r := newRand()
	p := &Portfolio{
		store:     st,
		key:       DefaultKey,
		timeout:   DefaultTimeout,
		pricer:    RandomPricer(r),
		classify:  RandomClassifier(r),
		newID:     uuid.NewString,
		log:       zerolog.Nop(),
		writes:    semaphore.NewWeighted(1),
		positions: []Position{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With().Str("component", "portfolio").Logger()
	return p
}

// Load restores the persisted positions, replacing the in-memory ones.
//
// A missing or malformed payload yields an empty portfolio and no error: a
// malformed one is logged. A store failure returns no positions and a
// PersistenceError, and leaves the in-memory positions untouched.
func (p *Portfolio) Load(ctx context.Context) ([]Position, error) {
	if err := p.acquire(ctx, "load"); err != nil {
		return []Position{}, err
	}
	defer p.writes.Release(1)

	payload, ok, err := p.get(ctx)
	if err != nil {
		p.log.Error().Err(err).Int("kept", p.Len()).Msg("cannot read portfolio")
		return []Position{}, &PersistenceError{Op: "load", Key: p.key, Err: err}
	}
	if !ok {
		p.commit(nil)
		p.log.Debug().Msg("no saved portfolio")
		return []Position{}, nil
	}

	positions, err := decodePositions(payload)
	if err != nil {
		p.commit(nil)
		p.log.Error().Err(err).Str("key", p.key).Msg("malformed portfolio, starting empty")
		return []Position{}, nil
	}
	p.commit(positions)
	p.log.Info().Int("positions", len(positions)).Msg("portfolio loaded")
	return p.Positions(), nil
}

// AddPosition opens a new position.
//
// The current price and sector are assigned by the Pricer and Classifier. The
// whole updated list is persisted before it becomes visible: on error nothing
// has changed, neither in memory nor in the store.
func (p *Portfolio) AddPosition(ctx context.Context, symbol string, buyPrice Money, quantity Quantity) (Position, error) {
	in := Input{Symbol: normalizeSymbol(symbol), BuyPrice: buyPrice, Quantity: quantity}
	if err := in.Validate(); err != nil {
		return Position{}, err
	}

	if err := p.acquire(ctx, "add"); err != nil {
		return Position{}, err
	}
	defer p.writes.Release(1)

	pos := Position{
		ID:           p.newID(),
		Symbol:       in.Symbol,
		BuyPrice:     in.BuyPrice,
		Quantity:     in.Quantity,
		CurrentPrice: p.pricer(in.BuyPrice),
		Sector:       p.classify(),
	}
	if !pos.Sector.Valid() {
		return Position{}, fmt.Errorf("classifier returned unknown sector %q", pos.Sector)
	}
	if pos.CurrentPrice.IsNegative() {
		return Position{}, fmt.Errorf("pricer returned negative price %s for %s", pos.CurrentPrice, pos.Symbol)
	}

	current := p.Positions()
	if slices.ContainsFunc(current, func(q Position) bool { return q.ID == pos.ID }) {
		return Position{}, fmt.Errorf("position id %q is already in use", pos.ID)
	}
	next := append(current, pos)

	if err := p.persist(ctx, "add", next); err != nil {
		return Position{}, err
	}
	p.commit(next)
	p.log.Info().
		Str("id", pos.ID).
		Str("symbol", pos.Symbol).
		Str("quantity", pos.Quantity.String()).
		Str("sector", string(pos.Sector)).
		Msg("position added")
	return pos, nil
}

// UpdatePrice sets the current price of the position 'id'. It is the seam for
// a live price feed, and follows the same persistence rules as AddPosition.
func (p *Portfolio) UpdatePrice(ctx context.Context, id string, price Money) (Position, error) {
	if price.IsNegative() {
		return Position{}, &ValidationError{Field: "currentPrice", Value: price.String(), Reason: "must not be negative"}
	}

	if err := p.acquire(ctx, "update"); err != nil {
		return Position{}, err
	}
	defer p.writes.Release(1)

	next := p.Positions()
	i := slices.IndexFunc(next, func(q Position) bool { return q.ID == id })
	if i < 0 {
		return Position{}, &ValidationError{Field: "id", Value: id, Reason: "no such position"}
	}
	next[i] = next[i].withPrice(price)

	if err := p.persist(ctx, "update", next); err != nil {
		return Position{}, err
	}
	p.commit(next)
	p.log.Info().Str("id", id).Str("price", price.String()).Msg("price updated")
	return next[i], nil
}

// Reset deletes every position.
func (p *Portfolio) Reset(ctx context.Context) error {
	if err := p.acquire(ctx, "reset"); err != nil {
		return err
	}
	defer p.writes.Release(1)

	if err := p.persist(ctx, "reset", nil); err != nil {
		return err
	}
	p.commit(nil)
	p.log.Info().Msg("portfolio reset")
	return nil
}

// Positions returns a copy of the positions, in insertion order.
func (p *Portfolio) Positions() []Position {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.positions)
}

// Len returns the number of positions.
func (p *Portfolio) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.positions)
}

// acquire waits for the write slot.
func (p *Portfolio) acquire(ctx context.Context, op string) error {
	if err := p.writes.Acquire(ctx, 1); err != nil {
		p.log.Warn().Err(err).Str("op", op).Msg("gave up waiting for a pending write")
		return &PersistenceError{Op: op, Key: p.key, Err: err}
	}
	return nil
}

// get reads the raw payload under the store timeout.
func (p *Portfolio) get(ctx context.Context) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.store.Get(ctx, p.key)
}

// persist writes 'positions' as a whole under the store timeout.
func (p *Portfolio) persist(ctx context.Context, op string, positions []Position) error {
	payload, err := encodePositions(positions)
	if err != nil {
		return &PersistenceError{Op: op, Key: p.key, Err: err}
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.store.Set(ctx, p.key, payload); err != nil {
		p.log.Error().Err(err).Str("op", op).Msg("cannot write portfolio")
		return &PersistenceError{Op: op, Key: p.key, Err: err}
	}
	return nil
}

// commit makes 'positions' the in-memory state.
func (p *Portfolio) commit(positions []Position) {
	if positions == nil {
		positions = []Position{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions = positions
}
