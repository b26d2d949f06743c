package routes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern string
		params  []string
		wantErr bool
	}{
		{pattern: "/ws/chat/:peer_id", params: []string{"peer_id"}},
		{pattern: "/ws/notifications"},
		{pattern: "/", params: nil},
		{pattern: "/files/*path", params: []string{"path"}},
		{pattern: "", wantErr: true},
		{pattern: "ws/chat", wantErr: true},
		{pattern: "/ws//chat", wantErr: true},
		{pattern: "/ws/chat/", wantErr: true},
		{pattern: "/ws/:", wantErr: true},
		{pattern: "/ws/:1id", wantErr: true},
		{pattern: "/ws/:id/:id", wantErr: true},
		{pattern: "/ws/*rest/more", wantErr: true},
		{pattern: "/ws/ch?at", wantErr: true},
		{pattern: "/ws/a:b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params, p.Params())
		})
	}
}

func TestPattern_Match(t *testing.T) {
	p, err := Compile("/ws/chat/:peer_id")
	require.NoError(t, err)

	params, ok := p.Match("/ws/chat/42")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"peer_id": "42"}, params)

	for _, path := range []string{"/ws/chat", "/ws/chat/", "/ws/chat/42/x", "/ws/notifications", "ws/chat/1"} {
		_, ok := p.Match(path)
		assert.False(t, ok, path)
	}

	all, err := Compile("/static/*path")
	require.NoError(t, err)
	params, ok = all.Match("/static/css/app.css")
	require.True(t, ok)
	assert.Equal(t, "/css/app.css", params["path"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr string
	}{
		{
			name: "distinct endpoints",
			routes: []Route{
				{Name: "chat", Pattern: "/ws/chat/:peer_id"},
				{Name: "notifications", Pattern: "/ws/notifications"},
				{Name: "health", Pattern: "/health"},
			},
		},
		{
			name: "param overlaps static",
			routes: []Route{
				{Name: "chat", Pattern: "/ws/:room"},
				{Name: "notifications", Pattern: "/ws/notifications"},
			},
			wantErr: `route chat "/ws/:room" overlaps route notifications "/ws/notifications": ambiguous patterns`,
		},
		{
			name: "same shape different names",
			routes: []Route{
				{Name: "a", Pattern: "/ws/chat/:peer_id"},
				{Name: "b", Pattern: "/ws/chat/:user"},
			},
			wantErr: "overlaps",
		},
		{
			name: "catch-all swallows",
			routes: []Route{
				{Name: "all", Pattern: "/ws/*rest"},
				{Name: "chat", Pattern: "/ws/chat/:peer_id"},
			},
			wantErr: "overlaps",
		},
		{
			name: "different depth",
			routes: []Route{
				{Name: "chat", Pattern: "/ws/chat/:peer_id"},
				{Name: "chats", Pattern: "/ws/chat"},
			},
		},
		{
			name:    "bad pattern named",
			routes:  []Route{{Name: "chat", Pattern: "/ws/chat/:"}},
			wantErr: `route chat "/ws/chat/:"`,
		},
		{
			name: "duplicate name",
			routes: []Route{
				{Name: "chat", Pattern: "/a"},
				{Name: "chat", Pattern: "/b"},
			},
			wantErr: "declared twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.routes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, ErrInvalidRoute))

			var re *RouteError
			require.True(t, errors.As(err, &re))
			assert.NotEmpty(t, re.Route.Pattern)
		})
	}
}
