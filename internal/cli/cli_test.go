package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/ribbon/pkg/adapters/file"
	"github.com/aretw0/ribbon/pkg/runner"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copyMachine = `
name: copy
ribbons: 1
transitions:
  - {from: i, to: q1, rule: "ç,ç -> R,ç,R"}
  - {from: q1, to: q1, rule: "a,_ -> R,a,R"}
  - {from: q1, to: a, rule: "$,_ -> N,_,N"}
`

// loopMachine never halts on any word.
const loopMachine = `
ribbons: 1
transitions:
  - {from: i, to: i, rule: "ç,ç -> N,ç,N"}
`

func testEnv(t *testing.T, files map[string]string) (Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	var stdout, stderr bytes.Buffer
	return Env{Fs: fsys, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRun_Accepted(t *testing.T) {
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{DefinitionPath: "copy.yaml", Word: "aa"})
	require.NoError(t, err)
	assert.Equal(t, ExitAccepted, ExitCode(err))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 6, "start, marker, two copies, accept, status")
	assert.Equal(t, "accepted", lines[len(lines)-1])
	assert.True(t, strings.HasPrefix(lines[0], "i "), "first line is the initial state: %q", lines[0])
}

func TestRun_RejectedExitCode(t *testing.T) {
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{DefinitionPath: "copy.yaml", Word: "ab", Quiet: true})
	assert.Equal(t, ExitRejected, ExitCode(err))
	assert.Equal(t, "rejected\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts RunOptions
	}{
		{"missing file", RunOptions{DefinitionPath: "nope.yaml", Word: "a"}},
		{"invalid word", RunOptions{DefinitionPath: "copy.yaml", Word: "a\x00"}},
		{"unknown store", RunOptions{DefinitionPath: "copy.yaml", Word: "a", Store: StoreOptions{Kind: "s3"}}},
		{"step limit", RunOptions{DefinitionPath: "loop.yaml", Word: "a", MaxSteps: 5, Quiet: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine, "loop.yaml": loopMachine})
			err := Run(context.Background(), env, tt.opts)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, ExitCode(err))
		})
	}
}

func TestRun_JSON(t *testing.T) {
	env, stdout, stderr := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{DefinitionPath: "copy.yaml", Word: "a", JSON: true, Store: StoreOptions{Kind: StoreMemory}})
	require.NoError(t, err)
	assert.Empty(t, stderr.String(), "JSON mode keeps stderr free of system messages")

	var events []runner.Event
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		var ev runner.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.Len(t, events, 5)
	last := events[len(events)-1]
	assert.Equal(t, runner.EventResult, last.Type)
	assert.Equal(t, "accepted", string(last.Status))
	assert.NotEmpty(t, last.TraceID)
}

func TestRun_FileStore(t *testing.T) {
	env, _, stderr := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{
		DefinitionPath: "copy.yaml",
		Word:           "aaa",
		Quiet:          true,
		Store:          StoreOptions{Kind: StoreFile, Dir: "traces"},
	})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), ">>> trace ")

	ids, err := file.NewWithFs(env.Fs, "traces").List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)

	trace, err := file.NewWithFs(env.Fs, "traces").Load(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "copy", trace.Machine)
	assert.Equal(t, "aaa", trace.Word)
}

func TestRun_Report(t *testing.T) {
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{DefinitionPath: "copy.yaml", Word: "a", Quiet: true, Report: true})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "| # |", "plain output prints the raw markdown table")
}

func TestRun_LogFile(t *testing.T) {
	env, _, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	err := Run(context.Background(), env, RunOptions{
		DefinitionPath: "copy.yaml",
		Word:           "a",
		Quiet:          true,
		Log:            LogOptions{Level: "error", File: "ribbon.log"},
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(env.Fs, "ribbon.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"step"`, "the log file records debug events")
	assert.Contains(t, string(data), `"msg":"halt"`)
}

func TestGraph(t *testing.T) {
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	require.NoError(t, Graph(context.Background(), env, GraphOptions{DefinitionPath: "copy.yaml"}))
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.NotContains(t, out, "classDef current")

	stdout.Reset()
	require.NoError(t, Graph(context.Background(), env, GraphOptions{DefinitionPath: "copy.yaml", Word: "a"}))
	assert.Contains(t, stdout.String(), "classDef")
}

func TestGraph_YAML(t *testing.T) {
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine})

	require.NoError(t, Graph(context.Background(), env, GraphOptions{DefinitionPath: "copy.yaml", Format: FormatYAML}))
	assert.Contains(t, stdout.String(), "name: copy")

	// The normalized definition builds the same machine.
	require.NoError(t, afero.WriteFile(env.Fs, "normalized.yaml", stdout.Bytes(), 0o644))
	err := Run(context.Background(), env, RunOptions{DefinitionPath: "normalized.yaml", Word: "aa", Quiet: true})
	assert.NoError(t, err)

	err = Graph(context.Background(), env, GraphOptions{DefinitionPath: "copy.yaml", Format: "dot"})
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, closeStore, err := openStore(afero.NewMemMapFs(), StoreOptions{Kind: StoreRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer closeStore()

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(&ExitError{Code: ExitRejected}))
	assert.Equal(t, "exit status 1", (&ExitError{Code: 1}).Error())
	assert.Equal(t, ExitFailure, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: ExitFailure, Err: errors.New("boom")})))
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	env, _, _ := testEnv(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, env, ServeOptions{Store: StoreOptions{Kind: StoreMemory}}, ln)
	}()

	url := "http://" + ln.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Get(url + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(url + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestValidate(t *testing.T) {
	const orphan = `
ribbons: 1
transitions:
  - {from: i, to: a, rule: "ç,ç -> N,ç,N"}
  - {from: orphan, to: a, rule: "$,_ -> N,_,N"}
`
	env, stdout, _ := testEnv(t, map[string]string{"copy.yaml": copyMachine, "orphan.yaml": orphan, "loop.yaml": loopMachine})

	require.NoError(t, Validate(context.Background(), env, ValidateOptions{DefinitionPath: "copy.yaml"}))
	assert.Equal(t, "copy: 4 states, 3 reachable, 1 writing tapes\n", stdout.String())

	stdout.Reset()
	require.NoError(t, Validate(context.Background(), env, ValidateOptions{DefinitionPath: "orphan.yaml"}))
	assert.Contains(t, stdout.String(), "warning: state 'orphan' is unreachable")

	err := Validate(context.Background(), env, ValidateOptions{DefinitionPath: "orphan.yaml", Strict: true})
	assert.Equal(t, ExitFailure, ExitCode(err))

	err = Validate(context.Background(), env, ValidateOptions{DefinitionPath: "loop.yaml"})
	assert.ErrorContains(t, err, "accepting state is unreachable")
}
