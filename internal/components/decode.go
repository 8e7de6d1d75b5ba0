package components

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

// Decoder turns serialized component payloads into node trees. Malformed
// payloads degrade to an empty sequence and are reported through the logger;
// they never propagate as errors so a broken content row cannot take down the
// page that references it.
type Decoder struct {
	logger interfaces.Logger
}

// NewDecoder constructs a decoder. A nil logger falls back to a no-op.
func NewDecoder(logger interfaces.Logger) *Decoder {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Decoder{logger: logger}
}

// Decode parses a stored content payload into its node sequence. Empty input
// yields an empty sequence. Node order follows payload order; ids are kept as
// authored, including duplicates, and unknown types are preserved for the
// renderer to skip.
func (d *Decoder) Decode(raw string) []Node {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var nodes []Node
	if err := json.Unmarshal([]byte(trimmed), &nodes); err != nil {
		d.logger.Warn("component payload decode failed",
			"error", err,
			"payload_bytes", len(trimmed),
		)
		return nil
	}
	return nodes
}

// Encode serializes a node sequence back into the persisted content format.
// Encoding a decoded sequence reproduces an equivalent payload.
func Encode(nodes []Node) (string, error) {
	if nodes == nil {
		nodes = []Node{}
	}
	data, err := json.Marshal(nodes)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
