package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordmove/internal/api"
	"github.com/mcoot/wordmove/internal/api/request"
	"github.com/mcoot/wordmove/internal/factory"
	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/testutil"
)

func startServer(t *testing.T) string {
	t.Helper()

	app, err := factory.New(factory.Config{Logger: testutil.NopLogger()})
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		Engine:         app.Engine,
		GameController: app.GameController,
		HubManager:     app.HubManager,
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func run(t *testing.T, serverURL, format string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", serverURL, "--output", format}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeBoard(t *testing.T, b model.Board) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()+"\n"), 0o600))
	return path
}

// Local evaluation

func TestEvaluateLocal(t *testing.T) {
	previous := testutil.BuildBoard(testutil.V(7, 7, "CAT"))
	proposed := testutil.Extend(previous, testutil.V(10, 7, "S"))

	output, err := run(t, "http://unused", OutputJSON,
		"evaluate", "--previous", writeBoard(t, previous), "--proposed", writeBoard(t, proposed))
	require.NoError(t, err)

	var result Evaluation
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, []string{"CATS"}, result.Words)
	assert.Equal(t, 6, result.Score)
}

func TestEvaluateLocalEmptyPrevious(t *testing.T) {
	proposed := testutil.BuildBoard(testutil.H(7, 7, "HELLO"))

	output, err := run(t, "http://unused", OutputText, "evaluate", "--proposed", writeBoard(t, proposed))
	require.NoError(t, err)

	assert.Contains(t, output, "Words: HELLO")
	assert.Contains(t, output, "Score: 9")
}

func TestEvaluateLocalRejection(t *testing.T) {
	proposed := testutil.BuildBoard(testutil.H(0, 0, "CAT"))

	_, err := run(t, "http://unused", OutputText, "evaluate", "--proposed", writeBoard(t, proposed))

	assert.ErrorIs(t, err, model.ErrFirstMoveMustCoverCenter)
}

func TestEvaluateRequiresProposed(t *testing.T) {
	_, err := run(t, "http://unused", OutputText, "evaluate")
	assert.Error(t, err)
}

func TestEvaluateRemote(t *testing.T) {
	serverURL := startServer(t)
	proposed := testutil.BuildBoard(testutil.H(7, 7, "HELLO"))

	output, err := run(t, serverURL, OutputJSON, "evaluate", "--remote", "--proposed", writeBoard(t, proposed))
	require.NoError(t, err)

	var result Evaluation
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, 9, result.Score)
}

func TestEvaluateRemoteRejection(t *testing.T) {
	serverURL := startServer(t)
	proposed := testutil.BuildBoard(testutil.H(0, 0, "CAT"))

	_, err := run(t, serverURL, OutputJSON, "evaluate", "--remote", "--proposed", writeBoard(t, proposed))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "FIRST_MOVE_MUST_COVER_CENTER", apiErr.Code)
}

// Game commands

func TestGameLifecycle(t *testing.T) {
	serverURL := startServer(t)

	output, err := run(t, serverURL, OutputJSON, "game", "create")
	require.NoError(t, err)
	var created Game
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	require.NotEmpty(t, created.ID)

	output, err = run(t, serverURL, OutputJSON, "game", "play", created.ID, "7", "7", "across", "HELLO")
	require.NoError(t, err)
	var played PlayResult
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.Equal(t, 9, played.Move.Score)

	output, err = run(t, serverURL, OutputJSON, "game", "play", created.ID, "7", "7", "down", ".ELP")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.Equal(t, "HELP", played.Move.Words[0].Word)
	assert.Equal(t, 18, played.Game.Score)

	output, err = run(t, serverURL, OutputJSON, "game", "history", created.ID)
	require.NoError(t, err)
	var moves []Move
	require.NoError(t, json.Unmarshal([]byte(output), &moves))
	assert.Len(t, moves, 2)

	output, err = run(t, serverURL, OutputText, "game", "get", created.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Score: 18")
	assert.Contains(t, output, "Moves: 2")

	output, err = run(t, serverURL, OutputText, "game", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Game deleted")

	_, err = run(t, serverURL, OutputText, "game", "get", created.ID)
	assert.Error(t, err)
}

func TestGamePlayBoardFile(t *testing.T) {
	serverURL := startServer(t)

	output, err := run(t, serverURL, OutputJSON, "game", "create")
	require.NoError(t, err)
	var created Game
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	proposed := testutil.BuildBoard(testutil.H(7, 6, "CAT"))
	output, err = run(t, serverURL, OutputText, "game", "play", created.ID, "--board", writeBoard(t, proposed))
	require.NoError(t, err)
	assert.Contains(t, output, "Move 1 accepted")
	assert.Contains(t, output, "CAT")
}

func TestHealth(t *testing.T) {
	serverURL := startServer(t)

	output, err := run(t, serverURL, OutputText, "health")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\n", output)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "http://unused", "yaml", "health")
	assert.Error(t, err)
}

// Helpers

func TestParseTiles(t *testing.T) {
	tiles, err := parseTiles("7", "7", "down", "c.t")
	require.NoError(t, err)
	assert.Equal(t, []request.Tile{
		{Row: 7, Col: 7, Letter: "C"},
		{Row: 9, Col: 7, Letter: "T"},
	}, tiles)

	// Only ASCII letters are upper-cased locally
	tiles, err = parseTiles("7", "7", "across", "ſı")
	require.NoError(t, err)
	assert.Equal(t, []request.Tile{
		{Row: 7, Col: 7, Letter: "ſ"},
		{Row: 7, Col: 8, Letter: "ı"},
	}, tiles)

	_, err = parseTiles("x", "7", "down", "CAT")
	assert.Error(t, err)
	_, err = parseTiles("7", "7", "diagonal", "CAT")
	assert.Error(t, err)
	_, err = parseTiles("7", "7", "across", "...")
	assert.Error(t, err)
}

func TestParseBoardTextPadsShortLines(t *testing.T) {
	lines := make([]string, model.BoardSize)
	lines[7] = ".......HI"
	text := strings.Join(lines, "\r\n") + "\r\n\r\n"

	b, err := parseBoardText(text)
	require.NoError(t, err)
	assert.Equal(t, 'H', b.Get(model.Position{Row: 7, Col: 7}))
	assert.Equal(t, 2, b.TileCount())
}

func TestParseBoardTextRejectsWrongRowCount(t *testing.T) {
	_, err := parseBoardText("HELLO\n")
	assert.ErrorIs(t, err, model.ErrInvalidBoard)
}
