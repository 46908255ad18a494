package transport

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	PolicyAll   = "all"
	PolicyRange = "range"
)

// ApproveAll votes yes on every proposal.
type ApproveAll struct{}

func (ApproveAll) Approve(context.Context, int, json.RawMessage) (bool, string) {
	return true, ""
}

// RangePolicy votes yes only for indexes this node could mutate itself.
type RangePolicy struct {
	chain ChainLength
}

func NewRangePolicy(chain ChainLength) *RangePolicy {
	return &RangePolicy{chain: chain}
}

func (p *RangePolicy) Approve(_ context.Context, index int, _ json.RawMessage) (bool, string) {
	length := p.chain.Len()
	if index < 1 || index >= length {
		return false, fmt.Sprintf("index %d outside mutable range [1, %d]", index, length-1)
	}
	return true, ""
}

// NewApprovalPolicy returns the policy registered under name.
func NewApprovalPolicy(name string, chain ChainLength) (ApprovalPolicy, error) {
	switch name {
	case "", PolicyAll:
		return ApproveAll{}, nil
	case PolicyRange:
		if chain == nil {
			return nil, fmt.Errorf("approval policy %q needs a chain", name)
		}
		return NewRangePolicy(chain), nil
	default:
		return nil, fmt.Errorf("unknown approval policy %q", name)
	}
}
