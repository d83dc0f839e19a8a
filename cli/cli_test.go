package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShowroomDB/config"
	"ShowroomDB/registry"
)

func runSession(t *testing.T, script string) (string, *registry.Index[string]) {
	t.Helper()
	color.NoColor = true

	ix, err := registry.NewIndex[string]("repl", config.Default().Index, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(ix.Close)

	var out bytes.Buffer
	NewCli(bufio.NewScanner(strings.NewReader(script)), &out, ix).Start()
	return out.String(), ix
}

func TestSessionCommands(t *testing.T) {
	out, ix := runSession(t, strings.Join([]string{
		"SET b two",
		"set a one",
		"SET c three words",
		"SET a uno",
		"GET a",
		"GET zz",
		"DEL b",
		"DEL b",
		"SCAN",
		"SCAN b",
		"bogus",
		"EXIT",
		"SET after exit",
	}, "\n"))

	require.Contains(t, out, "OK (replaced)")
	require.Contains(t, out, "uno\n")
	require.Contains(t, out, "Key not found.")
	require.Contains(t, out, "a = uno\nc = three words\n(2 rows)")
	require.Contains(t, out, "c = three words\n(1 rows)")
	require.Contains(t, out, `Unknown command "bogus"`)

	require.Equal(t, 2, ix.Len())
	_, ok := ix.Get("after")
	require.False(t, ok)
}

func TestDumpCommand(t *testing.T) {
	out, _ := runSession(t, "DUMP\nSET A 1\nSET B 2\nSET C 3\nSET D 4\nSET E 5\nDUMP\n")

	require.Contains(t, out, "(empty tree)")
	require.Contains(t, out, "B+ tree: order=5 keys=5 height=2")
	require.Contains(t, out, "[node 2] INTERNAL keys=[B] children=[1 3]")
	require.Contains(t, out, "[node 1] LEAF keys=[A B] next=3")
	require.Contains(t, out, "[node 3] LEAF keys=[C D E] next=0")
}
