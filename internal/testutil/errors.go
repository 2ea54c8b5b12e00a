package testutil

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ValidationDetails extracts the per-field messages attached to a validation
// error, mirroring what the error-handler middleware reports to clients.
func ValidationDetails(err error) map[string]any {
	details := make(map[string]any)
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if strings.HasPrefix(payload, "__json__:") {
				var jsonDetails map[string]any
				if jsonErr := json.Unmarshal([]byte(payload[9:]), &jsonDetails); jsonErr == nil {
					for k, v := range jsonDetails {
						details[k] = v
					}
				}
			}
		}
	}
	return details
}
