// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package message

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Op is an opcode. It is the discriminant of every message on the wire.
type Op uint32

// Types of messages that may be sent between nodes
// Note: If you add a new Op below, you must also add it to ops (declared below)
const (
	// Handshake:
	ErrorMsg Op = iota
	Hello
	Auth
	DontHave
	GetPeers
	Peers
	// Ledger close:
	GetTxSet
	TxSet
	GeneralizedTxSet
	Tx
	// Consensus:
	GetQuorumSet
	QuorumSet
	Consensus
	GetConsensusState
	// Flow control:
	SendMore
	SendMoreBytes
	// Pull mode gossip:
	FloodAdvert
	FloodDemand
	// Network survey:
	SurveyRequest
	SurveyResponse
)

var (
	ops = []Op{
		ErrorMsg,
		Hello,
		Auth,
		DontHave,
		GetPeers,
		Peers,
		GetTxSet,
		TxSet,
		GeneralizedTxSet,
		Tx,
		GetQuorumSet,
		QuorumSet,
		Consensus,
		GetConsensusState,
		SendMore,
		SendMoreBytes,
		FloodAdvert,
		FloodDemand,
		SurveyRequest,
		SurveyResponse,
	}

	// FloodOps are relayed to every peer and are subject to flood capacity.
	FloodOps = []Op{
		Tx,
		Consensus,
		FloodAdvert,
		FloodDemand,
	}
)

// Ops returns every known op.
func Ops() []Op {
	return slices.Clone(ops)
}

// Known reports whether [op] is one of the defined message types.
func (op Op) Known() bool {
	return slices.Contains(ops, op)
}

// IsFlood reports whether messages of this type are broadcast-relayed.
func (op Op) IsFlood() bool {
	return slices.Contains(FloodOps, op)
}

func (op Op) String() string {
	switch op {
	case ErrorMsg:
		return "error"
	case Hello:
		return "hello"
	case Auth:
		return "auth"
	case DontHave:
		return "dont_have"
	case GetPeers:
		return "get_peers"
	case Peers:
		return "peers"
	case GetTxSet:
		return "get_tx_set"
	case TxSet:
		return "tx_set"
	case GeneralizedTxSet:
		return "generalized_tx_set"
	case Tx:
		return "tx"
	case GetQuorumSet:
		return "get_quorum_set"
	case QuorumSet:
		return "quorum_set"
	case Consensus:
		return "consensus"
	case GetConsensusState:
		return "get_consensus_state"
	case SendMore:
		return "send_more"
	case SendMoreBytes:
		return "send_more_bytes"
	case FloodAdvert:
		return "flood_advert"
	case FloodDemand:
		return "flood_demand"
	case SurveyRequest:
		return "survey_request"
	case SurveyResponse:
		return "survey_response"
	default:
		return fmt.Sprintf("unknown_op_%d", uint32(op))
	}
}
