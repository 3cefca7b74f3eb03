package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lambda/ast"
	"github.com/xiam/lambda/lexer"
	"github.com/xiam/lambda/parser"
)

func TestEvaluatorReduceAll(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `(\x.x) a`,
			Out: `a`,
		},
		{
			In:  `(\x y.x) a b`,
			Out: `a`,
		},
		{
			In:  `(\x y.y) a b`,
			Out: `b`,
		},
		{
			In:  `(\x.x) a b`,
			Out: `a b`,
		},
		{
			In:  `a b`,
			Out: `a b`,
		},
		{
			In:  `\x.x`,
			Out: `(\x.x)`,
		},
		{
			// Church-encoded two: both parameters fire at once.
			In:  `(\f x.f (f x)) g y`,
			Out: `g (g y)`,
		},
		{
			In:  `(\t f.t) (\x y.x) (\x y.y) a b`,
			Out: `a`,
		},
	}

	for i := range testCases {
		ev, err := New(testCases[i].In)
		require.NoError(t, err, "input: %q", testCases[i].In)

		normal, err := ev.ReduceAll()
		require.NoError(t, err, "input: %q", testCases[i].In)

		assert.Equal(t, testCases[i].Out, ast.Encode(normal), "input: %q", testCases[i].In)
	}
}

func TestEvaluatorReduceOnce(t *testing.T) {
	ev, err := New(`(\x.x) a b`)
	require.NoError(t, err)

	changed, err := ev.ReduceOnce()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `a b`, ev.PrettyPrint())

	// The remaining term is stuck.
	changed, err = ev.ReduceOnce()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, `a b`, ev.PrettyPrint())
}

func TestEvaluatorReduceOnceMatchesReduceAll(t *testing.T) {
	testCases := []string{
		`a`,
		`a b`,
		`\x.x`,
		`a (\x.x)`,
		`(\x.x) a`,
		`(\x y.x) a b`,
	}

	for i := range testCases {
		first, err := New(testCases[i])
		require.NoError(t, err)
		second, err := New(testCases[i])
		require.NoError(t, err)

		changed, err := first.ReduceOnce()
		require.NoError(t, err)

		normal, err := second.ReduceAll()
		require.NoError(t, err)

		// ReduceOnce returns false exactly when ReduceAll leaves the
		// term unchanged.
		assert.Equal(t, changed, !ast.Equal(second.Snapshot(0), normal), "input: %q", testCases[i])
	}
}

func TestEvaluatorConstructionErrors(t *testing.T) {
	{
		ev, err := New(`a1`)
		require.Error(t, err)
		assert.Nil(t, ev)

		lexErr, ok := err.(*lexer.LexError)
		require.True(t, ok)
		assert.Equal(t, 1, lexErr.Offset)
	}

	{
		ev, err := New(`(\x.x a`)
		require.Error(t, err)
		assert.Nil(t, ev)

		parseErr, ok := err.(*parser.ParseError)
		require.True(t, ok)
		assert.Equal(t, 7, parseErr.Offset)
	}
}

func TestEvaluatorEvalError(t *testing.T) {
	ev, err := New(`(\x y.x) a`)
	require.NoError(t, err)

	before := ev.AST()

	_, err = ev.ReduceAll()
	require.Error(t, err)

	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, KindInsufficientArguments, evalErr.Kind)
	assert.Equal(t, 2, evalErr.Expected)
	assert.Equal(t, 1, evalErr.Got)

	// The failed step commits nothing.
	assert.True(t, ast.Equal(before, ev.AST()))
	assert.Len(t, ev.History(), 1)
}

func TestEvaluatorMessage(t *testing.T) {
	ev, err := New(`(\x y.x) a b`)
	require.NoError(t, err)

	assert.Equal(t, "", ev.Message())

	changed, err := ev.ReduceOnce()
	require.NoError(t, err)
	require.True(t, changed)

	assert.Equal(t, `applied (\x y.x) to a b, producing a`, ev.Message())
}

func TestEvaluatorHistory(t *testing.T) {
	ev, err := New(`(\x.x) ((\y.y) a) b`)
	require.NoError(t, err)

	_, err = ev.ReduceAll()
	require.NoError(t, err)

	// One snapshot per committed reduction; the final no-change probe
	// commits nothing.
	history := ev.History()
	require.Len(t, history, 3)

	assert.Equal(t, `(\x.x) ((\y.y) a) b`, ast.Encode(history[0]))
	assert.Equal(t, `(\x.x) a b`, ast.Encode(history[1]))
	assert.Equal(t, `a b`, ast.Encode(history[2]))

	// Restoring a snapshot rewinds the evaluator without touching history.
	ev.SetAST(ev.Snapshot(1))
	assert.Equal(t, `(\x.x) a b`, ev.PrettyPrint())
	assert.Len(t, ev.History(), 3)

	changed, err := ev.ReduceOnce()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `a b`, ev.PrettyPrint())
}

func TestEvaluatorSnapshotsImmutable(t *testing.T) {
	ev, err := New(`(\x.x x) a`)
	require.NoError(t, err)

	initial := ev.Snapshot(0)
	encoded := ast.Encode(initial)

	_, err = ev.ReduceAll()
	require.NoError(t, err)

	assert.Equal(t, encoded, ast.Encode(initial))
}

func TestReductionTraceRoundTrips(t *testing.T) {
	// Every tree the evaluator produces re-parses to an identical tree.
	testCases := []string{
		`(\x.x) a b`,
		`(\x y.x) (\z.z z) b c`,
		`(\f x.f (f x)) (\w.w) y`,
		`\q.(\x.x) (\y.y a)`,
	}

	for i := range testCases {
		ev, err := New(testCases[i])
		require.NoError(t, err)

		_, err = ev.ReduceAll()
		require.NoError(t, err)

		for _, snapshot := range ev.History() {
			again, err := parser.Parse(ast.Encode(snapshot))
			require.NoError(t, err, "encoded: %q", ast.Encode(snapshot))
			assert.True(t, ast.Equal(snapshot, again), "encoded: %q", ast.Encode(snapshot))
		}
	}
}
