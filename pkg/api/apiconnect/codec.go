package apiconnect

import "encoding/json"

// JSONCodec marshals plain Go messages with encoding/json. It is registered
// under the "json" name, so the Connect protocol sends application/json.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
