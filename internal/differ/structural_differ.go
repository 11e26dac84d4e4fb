package differ

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// StructuralDiffer compares two sanitized HTML fragments by positional
// child alignment: children are paired by index, with no identity matching
// between nodes. Inserting a child at the front of a list therefore shifts
// all following siblings and reports them as modified.
type StructuralDiffer struct {
	logger zerolog.Logger
}

// NewStructuralDiffer creates a new structural differ
func NewStructuralDiffer(logger zerolog.Logger) *StructuralDiffer {
	return &StructuralDiffer{
		logger: logger.With().Str("component", "StructuralDiffer").Logger(),
	}
}

// DiffStructure parses both fragments and emits the ordered structural
// change list. A parse failure degrades to an empty change list; the
// Degraded flag records the failure for internal logging only.
func (sd *StructuralDiffer) DiffStructure(oldHTML, newHTML string) models.StructuralDiffResult {
	result := models.StructuralDiffResult{Changes: []models.StructuralChange{}}

	oldBody, errOld := parseFragmentBody(oldHTML)
	newBody, errNew := parseFragmentBody(newHTML)
	if errOld != nil || errNew != nil {
		sd.logger.Warn().
			AnErr("old_parse_error", errOld).
			AnErr("new_parse_error", errNew).
			Msg("Structural diff degraded to empty change list")
		result.Degraded = true
		return result
	}

	sd.compareNodes(oldBody, newBody, &result.Changes)
	return result
}

// compareNodes applies the positional recursion rules to one node pair.
func (sd *StructuralDiffer) compareNodes(node1, node2 *html.Node, changes *[]models.StructuralChange) {
	if node1 == nil && node2 == nil {
		return
	}

	if node1 == nil {
		*changes = append(*changes, models.StructuralChange{
			Type:       models.ElementAdded,
			Element:    nodeName(node2),
			NewContent: textContent(node2),
		})
		return
	}

	if node2 == nil {
		*changes = append(*changes, models.StructuralChange{
			Type:       models.ElementRemoved,
			Element:    nodeName(node1),
			OldContent: textContent(node1),
		})
		return
	}

	name1 := nodeName(node1)
	name2 := nodeName(node2)
	if name1 != name2 {
		*changes = append(*changes, models.StructuralChange{
			Type:     models.ElementModified,
			Element:  name1,
			OldValue: name1,
			NewValue: name2,
		})
	}

	sd.compareAttributes(node1, node2, name1, changes)

	children1 := childNodes(node1)
	children2 := childNodes(node2)

	if len(children1) == 0 && len(children2) == 0 {
		oldContent := textContent(node1)
		newContent := textContent(node2)
		if oldContent != newContent {
			*changes = append(*changes, models.StructuralChange{
				Type:       models.TextChanged,
				Element:    name1,
				OldContent: oldContent,
				NewContent: newContent,
			})
		}
	}

	max := len(children1)
	if len(children2) > max {
		max = len(children2)
	}
	for i := 0; i < max; i++ {
		var child1, child2 *html.Node
		if i < len(children1) {
			child1 = children1[i]
		}
		if i < len(children2) {
			child2 = children2[i]
		}
		sd.compareNodes(child1, child2, changes)
	}
}

// compareAttributes emits AttributeChanged entries for attributes removed
// from, changed on, or added to the aligned node pair.
func (sd *StructuralDiffer) compareAttributes(node1, node2 *html.Node, element string, changes *[]models.StructuralChange) {
	attrs2 := make(map[string]string, len(node2.Attr))
	for _, attr := range node2.Attr {
		attrs2[attr.Key] = attr.Val
	}
	attrs1 := make(map[string]string, len(node1.Attr))
	for _, attr := range node1.Attr {
		attrs1[attr.Key] = attr.Val
	}

	for _, attr := range node1.Attr {
		newVal, ok := attrs2[attr.Key]
		if !ok {
			*changes = append(*changes, models.StructuralChange{
				Type:      models.AttributeChanged,
				Element:   element,
				Attribute: attr.Key,
				OldValue:  attr.Val,
			})
		} else if newVal != attr.Val {
			*changes = append(*changes, models.StructuralChange{
				Type:      models.AttributeChanged,
				Element:   element,
				Attribute: attr.Key,
				OldValue:  attr.Val,
				NewValue:  newVal,
			})
		}
	}

	for _, attr := range node2.Attr {
		if _, ok := attrs1[attr.Key]; !ok {
			*changes = append(*changes, models.StructuralChange{
				Type:      models.AttributeChanged,
				Element:   element,
				Attribute: attr.Key,
				NewValue:  attr.Val,
			})
		}
	}
}

// parseFragmentBody parses an HTML fragment and returns its body node.
func parseFragmentBody(fragment string) (*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return nil, errNoBody
	}
	return body.Nodes[0], nil
}

var errNoBody = errors.New("parsed document has no body")

// childNodes collects element and non-empty text children. Whitespace-only
// text nodes carry no rendered content and would misalign every sibling
// under positional pairing.
func childNodes(node *html.Node) []*html.Node {
	var children []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			children = append(children, child)
		case html.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				children = append(children, child)
			}
		}
	}
	return children
}

// nodeName returns the lowercased tag name, "text" for text nodes, and
// "element" for anything else.
func nodeName(node *html.Node) string {
	switch node.Type {
	case html.TextNode:
		return "text"
	case html.ElementNode:
		return strings.ToLower(node.Data)
	default:
		return "element"
	}
}

// textContent concatenates all text beneath a node.
func textContent(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}
