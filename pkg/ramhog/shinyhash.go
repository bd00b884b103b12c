// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package ramhog

import (
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/pbnjay/memory"
	"go.uber.org/zap"
)

// shinyHashState holds the process-wide singleton scratchpad set that
// ShinyHash lazily initializes, mirroring the static scratchpads/cs_hash
// pair in the original hashblock.cpp. Every call to ShinyHash is
// serialized on mu: concurrent callers block rather than interleave pad
// access, per spec §5.
var shinyHashState struct {
	mu     sync.Mutex
	pads   Pads
	params Params
}

// ShinyHash computes the reference ShinyHash digest of input using a
// lazily-allocated, process-wide scratchpad set at the reference
// parameters. It is the direct analogue of the original's
// `uint256 ShinyHash(const char *pbegin, const char *pend)`.
//
// logger may be nil; when non-nil it receives the one-time allocation log
// line the original emitted via printf.
func ShinyHash(input []byte, logger *zap.Logger) ([]byte, error) {
	shinyHashState.mu.Lock()
	defer shinyHashState.mu.Unlock()

	if shinyHashState.pads == nil {
		params := ReferenceParams()

		need := params.Bytes()
		if total := memory.TotalMemory(); total > 0 && need > total {
			if logger != nil {
				logger.Warn("ramhog: scratchpad request exceeds total system memory",
					zap.String("requested", datasize.ByteSize(need).String()),
					zap.String("available", datasize.ByteSize(total).String()),
				)
			}
		}

		if logger != nil {
			logger.Info("ramhog: allocating scratchpads",
				zap.Uint32("pads", params.N),
				zap.String("per_pad", datasize.ByteSize(uint64(params.C)*8).String()),
				zap.String("total", datasize.ByteSize(need).String()),
			)
		}

		pads, err := NewPads(int(params.N), int(params.C))
		if err != nil {
			return nil, err
		}
		shinyHashState.pads = pads
		shinyHashState.params = params
	}

	return HashWithPads(input, shinyHashState.params, shinyHashState.pads, ReferenceOutputSize)
}
