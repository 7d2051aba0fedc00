package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--rules", "testdata/rules.yaml"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestClassCommand(t *testing.T) {
	out, err := run(t, "class", "-c", "Button", "--set", "Variant=primary", "--set", "Margin=2")
	require.NoError(t, err)
	require.Equal(t, "btn btn-primary m-2\n", out)

	out, err = run(t, "class", "-c", "Button", "--add-class", "wide")
	require.NoError(t, err)
	require.Equal(t, "btn wide\n", out)

	out, err = run(t, "class", "-c", "Button", "--class", "plain")
	require.NoError(t, err)
	require.Equal(t, "plain\n", out)
}

func TestStyleCommand(t *testing.T) {
	out, err := run(t, "style", "-c", "Button", "--set", "Width=10em", "--add-style", "color:red")
	require.NoError(t, err)
	require.Equal(t, "width:10em;color:red\n", out)

	_, err = run(t, "style", "-c", "Button", "--add-style", "color")
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "-c", "Button", "--set", "Variant=danger",
		"--set", "Title=Delete", "--attr", "id=del", "--text", "Delete")
	require.NoError(t, err)
	require.Equal(t, `<button class="btn btn-danger" id="del" title="Delete">Delete</button>`+"\n", out)

	out, err = run(t, "render", "-c", "Badge", "--match", "span.badge")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)
}

func TestDescribeAndList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	require.Equal(t, "Badge\nButton\n", out)

	out, err = run(t, "describe", "Button")
	require.NoError(t, err)
	require.Contains(t, out, "Button <button>")
	require.Contains(t, out, "implements Spacing")
	require.Contains(t, out, `(from Spacing)`)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "class", "-c", "Nope")
	require.Error(t, err)
	_, err = run(t, "class", "-c", "Button", "--set", "Variant=violet")
	require.Error(t, err)
	_, err = run(t, "class")
	require.Error(t, err)
	_, err = run(t, "describe", "Nope")
	require.Error(t, err)
	root := newRootCmd()
	root.SetArgs([]string{"--rules", "testdata/missing.yaml", "list"})
	root.SetOut(&bytes.Buffer{})
	require.Error(t, root.Execute())
}
