package envelope

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/reedsolomon"
	"github.com/rs/zerolog/log"
)

// Reed-Solomon Configuration
const (
	rsDataShards   = 4
	rsParityShards = 2
	rsTotalShards  = rsDataShards + rsParityShards
)

func addParity(data []byte) ([]byte, error) {
	enc, err := reedsolomon.New(rsDataShards, rsParityShards)
	if err != nil {
		return nil, err
	}

	// Prepend length (4 bytes) to strip the shard padding later
	payload := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint32(payload, uint32(len(data)))
	payload = append(payload, data...)

	shards, err := enc.Split(payload)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(shards); err != nil {
		return nil, err
	}

	output := make([]byte, 0, len(shards)*len(shards[0]))
	for _, shard := range shards {
		output = append(output, shard...)
	}
	return output, nil
}

func removeParity(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%rsTotalShards != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of shards", ErrCorrupt, len(data))
	}

	enc, err := reedsolomon.New(rsDataShards, rsParityShards)
	if err != nil {
		return nil, err
	}

	perShard := len(data) / rsTotalShards
	shards := make([][]byte, rsTotalShards)
	for i := range shards {
		shards[i] = append([]byte(nil), data[i*perShard:(i+1)*perShard]...)
	}

	if ok, _ := enc.Verify(shards); !ok {
		repaired, err := repairOneShard(enc, shards)
		if err != nil {
			return nil, err
		}
		shards = repaired
	}

	joined := make([]byte, 0, rsDataShards*perShard)
	for i := 0; i < rsDataShards; i++ {
		joined = append(joined, shards[i]...)
	}

	if len(joined) < 4 {
		return nil, fmt.Errorf("%w: recovered data too short", ErrCorrupt)
	}
	length := binary.BigEndian.Uint32(joined[:4])
	if uint64(len(joined)) < 4+uint64(length) {
		return nil, fmt.Errorf("%w: recovered data length mismatch", ErrCorrupt)
	}
	return joined[4 : 4+length], nil
}

// repairOneShard locates a single damaged shard by treating each shard in
// turn as erased and keeping the first reconstruction that verifies.
func repairOneShard(enc reedsolomon.Encoder, shards [][]byte) ([][]byte, error) {
	for bad := range shards {
		candidate := make([][]byte, len(shards))
		copy(candidate, shards)
		candidate[bad] = nil

		if err := enc.Reconstruct(candidate); err != nil {
			continue
		}
		if ok, _ := enc.Verify(candidate); ok {
			log.Debug().Int("shard", bad).Msg("Repaired damaged shard")
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: parity check failed and no single shard could be repaired", ErrCorrupt)
}
