package cline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExec_InvokesRegisteredCallback(t *testing.T) {
	d := New()

	called := 0
	require.NoError(t, d.Register([]string{"foo", "bar"}, func(args []string) error {
		called++
		require.Empty(t, args)
		return nil
	}))

	require.NoError(t, d.Exec("foo bar"))
	require.NoError(t, d.Exec("foo bar"))
	require.Equal(t, 2, called)
}

func TestExec_ResidualArguments(t *testing.T) {
	d := New()

	var got []string
	require.NoError(t, d.Register([]string{"foo", "bar"}, func(args []string) error {
		got = args
		return nil
	}))

	require.NoError(t, d.Exec("foo bar baz 1"))
	require.Equal(t, []string{"baz", "1"}, got)
}

func TestExec_TokenizesOnWhitespaceRuns(t *testing.T) {
	d := New()

	var got []string
	require.NoError(t, d.Register([]string{"foo"}, func(args []string) error {
		got = args
		return nil
	}))

	require.NoError(t, d.Exec("  foo \t bar\t\tbaz  "))
	require.Equal(t, []string{"bar", "baz"}, got)
}

func TestExec_NoMatchInvokesNothing(t *testing.T) {
	d := New()

	called := false
	require.NoError(t, d.Register([]string{"foo"}, func(args []string) error {
		called = true
		return nil
	}))

	require.ErrorIs(t, d.Exec(""), &Error{Kind: ErrNoMatch})
	require.ErrorIs(t, d.Exec("unknown"), &Error{Kind: ErrNoMatch})
	require.False(t, called)
}

func TestExec_CallbackErrorPassedThrough(t *testing.T) {
	d := New()

	sentinel := errors.New("disk full")
	require.NoError(t, d.Register([]string{"save"}, func(args []string) error {
		return sentinel
	}))

	require.Same(t, sentinel, d.Exec("save"))
}

func TestComplete_LineTokenization(t *testing.T) {
	d := New()
	require.NoError(t, d.Register([]string{"foo", "bar"}, nopAction))
	require.NoError(t, d.Register([]string{"foo", "baz"}, nopAction))
	require.NoError(t, d.Register([]string{"fetch"}, nopAction))

	require.Equal(t, []string{"fetch", "foo"}, d.Complete(""))
	require.Equal(t, []string{"fetch", "foo"}, d.Complete("f"))
	require.Equal(t, []string{"foo"}, d.Complete("foo"))

	// Trailing whitespace moves completion to the next position.
	require.Equal(t, []string{"bar", "baz"}, d.Complete("foo "))
	require.Equal(t, []string{"bar", "baz"}, d.Complete("foo b"))
	require.Equal(t, []string{"bar"}, d.Complete("foo bar"))

	// Leading whitespace is ignored.
	require.Equal(t, []string{"fetch", "foo"}, d.Complete("  f"))
}

func TestComplete_EmptyLineOnEmptyTree(t *testing.T) {
	d := New()

	require.Empty(t, d.Complete(""))
	require.Empty(t, d.Complete("anything"))
}

func TestNewWith_StrictRegistration(t *testing.T) {
	d := NewWith(Options{StrictRegistration: true})

	require.NoError(t, d.Register([]string{"foo"}, nopAction))
	require.ErrorIs(t, d.Register([]string{"foo"}, nopAction), &Error{Kind: ErrDuplicateCommand})
}

func TestDispatcher_Paths(t *testing.T) {
	d := New()
	require.NoError(t, d.Register([]string{"task", "add"}, nopAction))
	require.NoError(t, d.Register([]string{"help"}, nopAction))

	require.Equal(t, [][]string{{"help"}, {"task", "add"}}, d.Paths())
}

func TestExec_RepeatedCallsAreIndependent(t *testing.T) {
	d := New()

	var got [][]string
	require.NoError(t, d.Register([]string{"echo"}, func(args []string) error {
		got = append(got, args)
		return nil
	}))

	require.NoError(t, d.Exec("echo one"))
	require.NoError(t, d.Exec("echo one"))
	require.Equal(t, [][]string{{"one"}, {"one"}}, got)
}
