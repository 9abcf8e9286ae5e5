// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luxfi/dapi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	toml := "masternode = [\"10.0.0.1\", \"10.0.0.2:4010\"]\nrotate = false\ntimeout = \"5s\"\ngrpc-port = 4000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dapi.toml"), []byte(toml), 0o644))

	config := NewDefaultCLIConfig()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd, config)
	require.NoError(t, cmd.ParseFlags([]string{"--datadir", dir, "--grpc-port", "5000", "--log", "error"}))
	require.NoError(t, loadConfig(cmd, config))

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2:4010"}, config.Masternodes)
	assert.False(t, config.Rotate)
	assert.Equal(t, 5*time.Second, config.Timeout)
	// flags win over the file
	assert.Equal(t, 5000, config.GRPCPort)
	assert.Equal(t, dapi.DefaultJRPCPort, config.JRPCPort)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	config := NewDefaultCLIConfig()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd, config)
	require.NoError(t, cmd.ParseFlags([]string{"--datadir", t.TempDir(), "--debug", "--log", "warn"}))
	require.NoError(t, loadConfig(cmd, config))

	assert.True(t, config.Debug)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, []string{DefaultMasternode}, config.Masternodes)
}

func TestNodeProvider(t *testing.T) {
	config := NewDefaultCLIConfig()

	config.Masternodes = []string{"10.0.0.1"}
	provider, err := nodeProvider(config)
	require.NoError(t, err)
	assert.Equal(t, dapi.FixedNode{Host: "10.0.0.1"}, provider)

	config.Masternodes = []string{"10.0.0.1", "10.0.0.2:4010"}
	provider, err = nodeProvider(config)
	require.NoError(t, err)
	rotating, ok := provider.(*dapi.RotatingNodes)
	require.True(t, ok)
	assert.Len(t, rotating.Nodes(), 2)

	config.Masternodes = nil
	_, err = nodeProvider(config)
	require.ErrorIs(t, err, dapi.ErrNoNodes)
}

func TestBestBlockHashCommand(t *testing.T) {
	const tip = "00000bafbc94add76cb75e2ec92894837288a481e5c005f6563d91623bf8bc2c"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID uint64 `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "result": tip, "id": req.ID})
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"--datadir", t.TempDir(),
		"--log", "error",
		"--masternode", host,
		"--jrpc-port", port,
		"best-block-hash",
	})
	require.NoError(t, root.Execute())
	assert.Equal(t, tip+"\n", out.String())
}

func TestBlockCommandNeedsOneSelector(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--datadir", t.TempDir(), "--log", "error", "block"})
	require.Error(t, root.Execute())

	root = NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--datadir", t.TempDir(), "--log", "error", "block", "--hash", "abc"})
	err := root.Execute()
	require.ErrorIs(t, err, dapi.ErrPreconditionViolation)
}

func TestPrintBytes(t *testing.T) {
	var out bytes.Buffer
	printBytes(&out, nil)
	printBytes(&out, []byte{0xca, 0xfe})
	assert.Equal(t, "not found\ncafe\n", out.String())
}
