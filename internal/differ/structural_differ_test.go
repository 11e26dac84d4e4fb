package differ

import (
	"testing"

	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStructuralDiffer() *StructuralDiffer {
	return NewStructuralDiffer(zerolog.Nop())
}

func TestStructuralDiffer_IdenticalFragments(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("<p>hello</p><ul><li>a</li></ul>", "<p>hello</p><ul><li>a</li></ul>")

	assert.Empty(t, result.Changes)
	assert.False(t, result.Degraded)
}

func TestStructuralDiffer_BothEmpty(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("", "")

	assert.Empty(t, result.Changes)
	assert.False(t, result.Degraded)
}

func TestStructuralDiffer_ElementAdded(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("<p>a</p>", "<p>a</p><p>b</p>")

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, models.ElementAdded, change.Type)
	assert.Equal(t, "p", change.Element)
	assert.Equal(t, "b", change.NewContent)
}

func TestStructuralDiffer_ElementRemoved(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("<p>a</p><p>b</p>", "<p>a</p>")

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, models.ElementRemoved, change.Type)
	assert.Equal(t, "p", change.Element)
	assert.Equal(t, "b", change.OldContent)
}

func TestStructuralDiffer_AttributeRemoved(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure(`<a href="x">link</a>`, `<a>link</a>`)

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, models.AttributeChanged, change.Type)
	assert.Equal(t, "a", change.Element)
	assert.Equal(t, "href", change.Attribute)
	assert.Equal(t, "x", change.OldValue)
	assert.Empty(t, change.NewValue)
}

func TestStructuralDiffer_AttributeChangedAndAdded(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure(`<a href="x">link</a>`, `<a href="y" id="main">link</a>`)

	require.Len(t, result.Changes, 2)

	assert.Equal(t, models.AttributeChanged, result.Changes[0].Type)
	assert.Equal(t, "href", result.Changes[0].Attribute)
	assert.Equal(t, "x", result.Changes[0].OldValue)
	assert.Equal(t, "y", result.Changes[0].NewValue)

	assert.Equal(t, models.AttributeChanged, result.Changes[1].Type)
	assert.Equal(t, "id", result.Changes[1].Attribute)
	assert.Empty(t, result.Changes[1].OldValue)
	assert.Equal(t, "main", result.Changes[1].NewValue)
}

func TestStructuralDiffer_LeafTextChanged(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("<p>old text</p>", "<p>new text</p>")

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, models.TextChanged, change.Type)
	assert.Equal(t, "text", change.Element)
	assert.Equal(t, "old text", change.OldContent)
	assert.Equal(t, "new text", change.NewContent)
}

func TestStructuralDiffer_TagChanged(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure("<b>same</b>", "<i>same</i>")

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, models.ElementModified, change.Type)
	assert.Equal(t, "b", change.OldValue)
	assert.Equal(t, "i", change.NewValue)
}

func TestStructuralDiffer_FrontInsertionMisalignsSiblings(t *testing.T) {
	sd := newTestStructuralDiffer()

	// Positional alignment pairs old children with the shifted new ones, so
	// a front insertion reports text noise on every following sibling plus
	// one addition at the end.
	result := sd.DiffStructure("<p>one</p><p>two</p>", "<p>zero</p><p>one</p><p>two</p>")

	require.Len(t, result.Changes, 3)
	assert.Equal(t, models.TextChanged, result.Changes[0].Type)
	assert.Equal(t, models.TextChanged, result.Changes[1].Type)
	assert.Equal(t, models.ElementAdded, result.Changes[2].Type)
	assert.Equal(t, "two", result.Changes[2].NewContent)
}

func TestStructuralDiffer_NestedRecursion(t *testing.T) {
	sd := newTestStructuralDiffer()

	result := sd.DiffStructure(
		"<div><h2>title</h2><p>body</p></div>",
		"<div><h2>title</h2><p>updated body</p></div>",
	)

	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.TextChanged, result.Changes[0].Type)
	assert.Equal(t, "body", result.Changes[0].OldContent)
	assert.Equal(t, "updated body", result.Changes[0].NewContent)
}
