package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	originTimestamp    = "01/01/2020"
	originData         = "Genesis block"
	originPreviousHash = "0"

	// digestLength is the number of hex characters in a digest.
	digestLength = 64
)

var (
	// ErrInvalidDifficulty is returned for a difficulty no digest can satisfy.
	ErrInvalidDifficulty = errors.New("ledger: invalid difficulty")
	// ErrHashMismatch marks a block whose stored hash differs from its recomputed digest.
	ErrHashMismatch = errors.New("ledger: hash mismatch")
	// ErrBrokenLink marks a block whose previous hash differs from its predecessor's hash.
	ErrBrokenLink = errors.New("ledger: broken link")
)

// Chain is the ordered, in-memory sequence of blocks owned by a node.
//
// Append and Mutate are serialized by writeMu so that a long mining search only
// blocks other writers; readers take mu and never wait for the search.
type Chain struct {
	writeMu sync.Mutex

	mu     sync.RWMutex
	blocks []Block

	difficulty int
	metrics    MiningMetrics
	logger     *zap.Logger
}

// ChainOption customizes a Chain.
type ChainOption func(*Chain)

// WithLogger sets the chain logger.
func WithLogger(logger *zap.Logger) ChainOption {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMiningMetrics sets the proof-of-work metrics collector.
func WithMiningMetrics(metrics MiningMetrics) ChainOption {
	return func(c *Chain) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// NewChain creates a chain holding only the origin block.
func NewChain(difficulty int, opts ...ChainOption) (*Chain, error) {
	if difficulty < 0 || difficulty > digestLength {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidDifficulty, difficulty, digestLength)
	}

	c := &Chain{
		difficulty: difficulty,
		metrics:    nopMiningMetrics{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	origin, err := createOrigin()
	if err != nil {
		return nil, fmt.Errorf("create origin block: %w", err)
	}
	c.blocks = []Block{origin}

	return c, nil
}

func createOrigin() (Block, error) {
	b, err := NewBlock(0, originTimestamp, originData, originPreviousHash)
	if err != nil {
		return Block{}, err
	}
	return *b, nil
}

// Difficulty returns the number of leading zeros an appended block must carry.
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Latest returns the last block of the chain.
func (c *Chain) Latest() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1].clone()
}

// Len returns the number of blocks, origin included.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.blocks)
}

// Block returns the block at index.
func (c *Chain) Block(index int) (Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.blocks) {
		return Block{}, false
	}
	return c.blocks[index].clone(), true
}

// Blocks returns a snapshot of the chain. Edits to it never reach the chain.
func (c *Chain) Blocks() []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Block, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = b.clone()
	}
	return out
}

// NextBlock builds a candidate positioned after the current latest block.
func (c *Chain) NextBlock(timestamp string, data any) (*Block, error) {
	return NewBlock(c.Latest().Index+1, timestamp, data, "")
}

// Mine searches for a nonce that gives block a hash with the chain's difficulty.
// The search has no attempt limit; it stops early only when ctx is done.
func (c *Chain) Mine(ctx context.Context, block *Block) error {
	started := time.Now()
	done := ctx.Done()

	var attempts uint64
	block.Hash = block.RecomputeHash()
	for !block.MeetsDifficulty(c.difficulty) {
		select {
		case <-done:
			c.metrics.ObserveMined(attempts, c.difficulty, ctx.Err(), started)
			return ctx.Err()
		default:
		}
		block.Nonce++
		block.Hash = block.RecomputeHash()
		attempts++
	}

	c.metrics.ObserveMined(attempts, c.difficulty, nil, started)
	c.logger.Debug("block mined",
		zap.Int("index", block.Index),
		zap.String("hash", block.Hash),
		zap.Uint64("nonce", block.Nonce),
		zap.Uint64("attempts", attempts),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// Append links block to the latest block, mines it and adds it to the chain.
func (c *Chain) Append(ctx context.Context, block *Block) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.appendLocked(ctx, block)
}

// AppendData builds the next block from data and appends it. The index is taken
// while holding the writer lock, so concurrent callers never share an index.
func (c *Chain) AppendData(ctx context.Context, timestamp string, data any) (Block, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	block, err := c.NextBlock(timestamp, data)
	if err != nil {
		return Block{}, err
	}
	if err := c.appendLocked(ctx, block); err != nil {
		return Block{}, err
	}
	return *block, nil
}

func (c *Chain) appendLocked(ctx context.Context, block *Block) error {
	block.PreviousHash = c.Latest().Hash
	if err := c.Mine(ctx, block); err != nil {
		return fmt.Errorf("mine block %d: %w", block.Index, err)
	}

	c.mu.Lock()
	c.blocks = append(c.blocks, block.clone())
	c.mu.Unlock()

	c.logger.Info("block appended", zap.Int("index", block.Index), zap.String("hash", block.Hash))
	return nil
}

// Verify checks every block after the origin and returns an error describing the
// first block whose hash or link is wrong.
func (c *Chain) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := 1; i < len(c.blocks); i++ {
		current := c.blocks[i]
		previous := c.blocks[i-1]

		if expected := current.RecomputeHash(); current.Hash != expected {
			return fmt.Errorf("block %d: %w: stored %s, computed %s", i, ErrHashMismatch, current.Hash, expected)
		}
		if current.PreviousHash != previous.Hash {
			return fmt.Errorf("block %d: %w: points to %s, predecessor is %s", i, ErrBrokenLink, current.PreviousHash, previous.Hash)
		}
	}
	return nil
}

// IsValid reports whether Verify finds no broken block.
func (c *Chain) IsValid() bool {
	return c.Verify() == nil
}

// Mutate replaces the data of a committed block and recommits its hash. The block
// is not mined again and the following block keeps its previous hash, so the
// chain stops validating from index+1 on. The origin block is never mutable; an
// index outside [1, len-1] returns false and leaves the chain unchanged.
func (c *Chain) Mutate(index int, newData any) (bool, error) {
	data, err := CanonicalJSON(newData)
	if err != nil {
		return false, err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 1 || index >= len(c.blocks) {
		return false, nil
	}

	b := &c.blocks[index]
	b.Data = data
	b.Hash = b.RecomputeHash()

	c.logger.Info("block mutated", zap.Int("index", index), zap.String("hash", b.Hash))
	return true, nil
}
