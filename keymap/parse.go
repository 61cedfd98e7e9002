package keymap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/dasdy/kle2kmk/model"
)

const keymapFunction = "get_keymap"

var (
	ErrSyntax   = errors.New("keymap has syntax errors")
	ErrNoKeymap = errors.New("no " + keymapFunction + " function returning a list")
)

// Keymap is the layer structure read back from a keymap.py module.
type Keymap struct {
	Layers []*Layer
}

type Layer struct {
	Name     string
	Bindings []model.Keycode
}

func parse(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	//nolint:wrapcheck
	return parser.ParseCtx(context.Background(), nil, source)
}

func getKeymapList(root *sitter.Node, source []byte) *sitter.Node {
	for i := range int(root.NamedChildCount()) {
		fn := root.NamedChild(i)
		if fn.Type() != "function_definition" {
			continue
		}

		name := fn.ChildByFieldName("name")
		if name == nil || name.Content(source) != keymapFunction {
			continue
		}

		body := fn.ChildByFieldName("body")
		if body == nil {
			return nil
		}

		for j := range int(body.NamedChildCount()) {
			stmt := body.NamedChild(j)
			if stmt.Type() != "return_statement" || stmt.NamedChildCount() == 0 {
				continue
			}

			if list := stmt.NamedChild(0); list.Type() == "list" {
				return list
			}
		}
	}

	return nil
}

func parseLayer(node *sitter.Node, source []byte, index int) *Layer {
	l := &Layer{}

	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)

		if child.Type() == "comment" {
			if l.Name == "" {
				l.Name = strings.TrimSpace(strings.TrimPrefix(child.Content(source), "#"))
			}

			continue
		}

		l.Bindings = append(l.Bindings, bindingKeycode(child.Content(source)))
	}

	if l.Name == "" && index < len(model.Layers) {
		l.Name = string(model.Layers[index])
	}

	return l
}

func bindingKeycode(expr string) model.Keycode {
	if expr == transparentAlias {
		return model.KeycodeTransparent
	}

	return model.Keycode(strings.TrimPrefix(expr, "KC."))
}

// Parse reads a keymap.py module and returns its layers in order.
func Parse(r io.Reader) (*Keymap, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	tree, err := parse(source)
	if err != nil {
		return nil, fmt.Errorf("error parsing treesitter tree: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}

	list := getKeymapList(root, source)
	if list == nil {
		return nil, ErrNoKeymap
	}

	keymap := &Keymap{}

	for i := range int(list.NamedChildCount()) {
		child := list.NamedChild(i)
		if child.Type() != "list" {
			continue
		}

		keymap.Layers = append(keymap.Layers, parseLayer(child, source, len(keymap.Layers)))
	}

	return keymap, nil
}

// Matrix converts the parsed layers back into a matrix keyed by layer name.
func (k *Keymap) Matrix() model.KeymapMatrix {
	matrix := make(model.KeymapMatrix, len(k.Layers))

	for _, l := range k.Layers {
		matrix[model.Layer(l.Name)] = l.Bindings
	}

	return matrix
}
