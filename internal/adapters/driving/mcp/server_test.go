package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/storage/memory"
	"github.com/shawnhcorey/Field-Sort/internal/core/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := memory.NewConfigStore(map[string]any{
		services.KeyDefaultKeys: []string{"2:number:descending"},
		services.KeyStrict:      true,
	})
	server, err := NewServer(&Ports{
		Sorter:   services.NewSortService(nil),
		Settings: services.NewSettingsService(store),
	})
	require.NoError(t, err)
	return server
}

// connect opens a client session to the server over in-memory transports.
func connect(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSortService)
	})

	t.Run("nil sort service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSortService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Sorter: services.NewSortService(nil)})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil sort service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSortService)
	})

	t.Run("sorter only is valid", func(t *testing.T) {
		ports := &Ports{Sorter: services.NewSortService(nil)}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_Session(t *testing.T) {
	ctx := context.Background()
	session := connect(t, newTestServer(t))

	t.Run("lists tools", func(t *testing.T) {
		result, err := session.ListTools(ctx, nil)
		require.NoError(t, err)

		var names []string
		for _, tool := range result.Tools {
			names = append(names, tool.Name)
		}
		assert.ElementsMatch(t, []string{"sort_lines", "extract_fields", "parse_keys"}, names)
	})

	t.Run("sort_lines sorts", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "sort_lines",
			Arguments: map[string]any{
				"marked": "__b__ x\n__a__ y\n",
				"keys":   []string{"1"},
			},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)
		require.NotEmpty(t, result.Content)

		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)

		var output SortOutput
		require.NoError(t, json.Unmarshal([]byte(text.Text), &output))
		assert.Equal(t, "__a__ y\n__b__ x\n", output.Output)
		assert.Equal(t, "success", output.Status)
		assert.Equal(t, 2, output.LineCount)
	})

	t.Run("sort_lines reports bad keys as tool errors", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "sort_lines",
			Arguments: map[string]any{
				"marked": "__b__\n__a__",
				"keys":   []string{"1:colour"},
			},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("reads locales", func(t *testing.T) {
		result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "fieldsort://locales"})
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var info localesInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "none", info.Active)
		assert.Equal(t, []string{"none"}, info.Locales)
	})
}
