package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOnline(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer healthy.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	closed := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name   string
		url    string
		forced bool
		want   bool
	}{
		{name: "no probe url", want: true},
		{name: "forced offline", forced: true, want: false},
		{name: "forced wins over healthy probe", url: healthy.URL, forced: true, want: false},
		{name: "healthy probe", url: healthy.URL, want: true},
		{name: "server error", url: failing.URL, want: false},
		{name: "unreachable", url: closedURL, want: false},
		{name: "bad url", url: "://nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(tt.url, func() bool { return tt.forced }, time.Second)
			assert.Equal(t, tt.want, c.Online(context.Background()))
		})
	}
}

func TestOnlineNilForced(t *testing.T) {
	c := NewChecker("", nil, 0)
	assert.True(t, c.Online(context.Background()))
}
