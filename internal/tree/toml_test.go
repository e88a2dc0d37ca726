package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── basic shapes ──────────────────────────────────────────────────────────────

// TestToTOML_NilTree verifies that a nil root is rejected.
func TestToTOML_NilTree(t *testing.T) {
	_, err := ToTOML(nil)
	assert.ErrorIs(t, err, ErrNilTree)
}

// TestToTOML_RootMustBeMap verifies that scalar and list roots are rejected.
func TestToTOML_RootMustBeMap(t *testing.T) {
	_, err := ToTOML(String("scalar"))
	assert.ErrorIs(t, err, ErrUnsupportedNode)

	_, err = ToTOML(List(Int(1)))
	assert.ErrorIs(t, err, ErrUnsupportedNode)
}

// TestToTOML_FlatScalars verifies a flat map renders without any bracketed
// section.
func TestToTOML_FlatScalars(t *testing.T) {
	m := Map().
		Set("workspace", String("/data/workspace")).
		Set("default_provider", String("anthropic")).
		Set("api_key", String("sk-x")).
		Set("port", Int(18789)).
		Set("enabled", Bool(false))

	out, err := ToTOML(m)
	require.NoError(t, err)

	want := `workspace = "/data/workspace"
default_provider = "anthropic"
api_key = "sk-x"
port = 18789
enabled = false
`
	assert.Equal(t, want, string(out))
	assert.NotContains(t, string(out), "[")
}

// TestToTOML_ScalarsPrecedeSections verifies top-level assignments come
// before the first section header, separated by a blank line.
func TestToTOML_ScalarsPrecedeSections(t *testing.T) {
	m := Map().
		Set("gateway", Map().Set("host", String("0.0.0.0"))).
		Set("name", String("pico"))

	out, err := ToTOML(m)
	require.NoError(t, err)

	want := `name = "pico"

[gateway]
host = "0.0.0.0"
`
	assert.Equal(t, want, string(out))
}

// TestToTOML_NestedSections verifies dotted section paths and the blank
// line between a section's assignments and its subsections.
func TestToTOML_NestedSections(t *testing.T) {
	m := Map().
		Set("server", Map().
			Set("host", String("h")).
			Set("tls", Map().Set("enabled", Bool(true))))

	out, err := ToTOML(m)
	require.NoError(t, err)

	want := `[server]
host = "h"

[server.tls]
enabled = true
`
	assert.Equal(t, want, string(out))
}

// TestToTOML_SectionOrderFollowsDeclaration verifies sibling sections keep
// declared order with blank-line separation, and a parent section always
// precedes its children.
func TestToTOML_SectionOrderFollowsDeclaration(t *testing.T) {
	m := Map().
		Set("a", Map().
			Set("b", Map().
				Set("x", Int(1)).
				Set("c", Map().Set("y", Int(2))))).
		Set("z", Map().Set("w", Int(3)))

	out, err := ToTOML(m)
	require.NoError(t, err)

	want := `[a.b]
x = 1

[a.b.c]
y = 2

[z]
w = 3
`
	assert.Equal(t, want, string(out))

	bIdx := strings.Index(string(out), "[a.b]")
	cIdx := strings.Index(string(out), "[a.b.c]")
	require.GreaterOrEqual(t, bIdx, 0)
	assert.Greater(t, cIdx, bIdx)
}

// ── omission ──────────────────────────────────────────────────────────────────

// TestToTOML_EmptyBranchesProduceNoHeader verifies that branches without
// renderable content emit nothing at all.
func TestToTOML_EmptyBranchesProduceNoHeader(t *testing.T) {
	m := Map().
		Set("present", String("x")).
		Set("empty", Map()).
		Set("deepEmpty", Map().Set("inner", Map()))

	out, err := ToTOML(m)
	require.NoError(t, err)
	assert.Equal(t, "present = \"x\"\n", string(out))
}

// TestToTOML_IntermediateMapsEmitNoOwnHeader verifies that a map holding
// only subsections contributes its name to the dotted path without a
// dangling empty header.
func TestToTOML_IntermediateMapsEmitNoOwnHeader(t *testing.T) {
	m := Map().
		Set("providers", Map().
			Set("kimi", Map().Set("api_key", String("mk"))))

	out, err := ToTOML(m)
	require.NoError(t, err)

	assert.Equal(t, "[providers.kimi]\napi_key = \"mk\"\n", string(out))
	assert.NotContains(t, string(out), "[providers]\n")
}

// ── values ────────────────────────────────────────────────────────────────────

// TestToTOML_Lists verifies inline list rendering of scalars.
func TestToTOML_Lists(t *testing.T) {
	m := Map().
		Set("models", Strings("claude-opus-4-1", "claude-sonnet-4-5")).
		Set("ports", List(Int(1), Int(2)))

	out, err := ToTOML(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `models = ["claude-opus-4-1", "claude-sonnet-4-5"]`)
	assert.Contains(t, string(out), `ports = [1, 2]`)
}

// TestToTOML_RejectsListOfMaps verifies nested list-of-maps is refused —
// the calling builder must flatten such shapes first.
func TestToTOML_RejectsListOfMaps(t *testing.T) {
	m := Map().Set("bad", List(Map().Set("x", Int(1))))

	_, err := ToTOML(m)
	assert.ErrorIs(t, err, ErrUnsupportedNode)
}

// TestToTOML_RejectsNestedLists verifies lists of lists are refused.
func TestToTOML_RejectsNestedLists(t *testing.T) {
	m := Map().Set("bad", List(List(Int(1))))

	_, err := ToTOML(m)
	assert.ErrorIs(t, err, ErrUnsupportedNode)
}

// TestToTOML_StringEscaping verifies quote and backslash escaping.
func TestToTOML_StringEscaping(t *testing.T) {
	m := Map().Set("key", String(`a "quoted" \ value`))

	out, err := ToTOML(m)
	require.NoError(t, err)
	assert.Equal(t, "key = \"a \\\"quoted\\\" \\\\ value\"\n", string(out))
}

// TestToTOML_FloatsKeepDecimalPoint verifies floats never collapse into
// integer literals.
func TestToTOML_FloatsKeepDecimalPoint(t *testing.T) {
	m := Map().
		Set("temperature", Float(0.7)).
		Set("whole", Float(2))

	out, err := ToTOML(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "temperature = 0.7\n")
	assert.Contains(t, string(out), "whole = 2.0\n")
}

// TestToTOML_QuotedKeys verifies keys outside the bare character set are
// quoted.
func TestToTOML_QuotedKeys(t *testing.T) {
	m := Map().Set("has space", String("v"))

	out, err := ToTOML(m)
	require.NoError(t, err)
	assert.Equal(t, "\"has space\" = \"v\"\n", string(out))
}

// ── determinism ───────────────────────────────────────────────────────────────

// TestToTOML_Deterministic verifies byte-identical output across repeated
// invocations on the same tree.
func TestToTOML_Deterministic(t *testing.T) {
	m := Map().
		Set("top", String("v")).
		Set("section", Map().
			Set("a", Int(1)).
			Set("sub", Map().Set("b", Int(2))))

	first, err := ToTOML(m)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := ToTOML(m)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}
