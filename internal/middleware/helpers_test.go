package middleware_test

import (
	"encoding/json"
	"testing"

	"github.com/ferdiebergado/nftlane/internal/pkg/web"
)

func assertErrorEnvelope(t *testing.T, body []byte) {
	t.Helper()

	var res web.ErrorResponse
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("json.Unmarshal(%q) = %v, want: nil", body, err)
	}

	if res.Status != web.StatusError || res.Message == "" {
		t.Errorf("error response = %+v, want status %q and a message", res, web.StatusError)
	}
}
