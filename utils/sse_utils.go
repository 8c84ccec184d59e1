package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteSSEEvent writes a named event with a JSON payload
func WriteSSEEvent(w io.Writer, event string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData)
	return err
}
