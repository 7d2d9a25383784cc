package checkout

import (
	"context"
	"errors"
)

// ErrUnpartitionedLines is returned by Queue.Partition when no partitioner
// claimed some of the cart's lines.
var ErrUnpartitionedLines = errors.New("checkout: cart lines left unpartitioned")

// Group is one delivery group produced by partitioning: the lines plus the
// delivery type they share.
type Group struct {
	DeliveryType string
	Lines        []Line
}

// Partitioner splits cart lines into delivery groups. It receives only the
// lines not yet claimed by earlier partitioners and returns the groups it
// formed plus the lines it leaves for the next one.
type Partitioner interface {
	Partition(ctx context.Context, cart Cart, lines []Line) (groups []Group, remaining []Line, err error)
}

// Queue runs partitioners in sequence over a cart's lines. Every line must
// end up in exactly one group.
type Queue []Partitioner

// Partition feeds the cart's lines through the queue and returns the
// groups in the order they were produced.
func (q Queue) Partition(ctx context.Context, cart Cart) ([]Group, error) {
	lines := cart.Lines()
	var groups []Group
	for _, p := range q {
		g, rest, err := p.Partition(ctx, cart, lines)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g...)
		lines = rest
		if len(lines) == 0 {
			break
		}
	}
	if len(lines) > 0 {
		return nil, ErrUnpartitionedLines
	}
	return groups, nil
}

// SinglePartition puts every line into one group with a fixed delivery
// type. It is the default strategy when a shop has a single delivery
// method.
type SinglePartition struct {
	DeliveryType string
}

func (s SinglePartition) Partition(_ context.Context, _ Cart, lines []Line) ([]Group, []Line, error) {
	if len(lines) == 0 {
		return nil, nil, nil
	}
	return []Group{{DeliveryType: s.DeliveryType, Lines: lines}}, nil, nil
}
