/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"strings"

	"github.com/pkg/errors"
)

// TermKind identifies the position a Term can take in an RDF statement.
type TermKind uint8

const (
	TermLiteral TermKind = iota
	TermIRI
	TermBlankNode
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank-node"
	}
	return "literal"
}

// Term is an IRI, a literal or a blank node, each held as a Literal.
type Term struct {
	Kind    TermKind
	Literal Literal
}

var termIRIProtocols = []string{"http://", "https://", "s3://"}

// NewIRITerm returns an IRI term. Only http, https and s3 IRIs are accepted.
func NewIRITerm(iri string) (Term, error) {
	lit, err := NewIRI(iri, IRIReference)
	if err != nil {
		return Term{}, errors.WithStack(&InvalidIRIError{IRI: iri})
	}
	for _, p := range termIRIProtocols {
		if strings.HasPrefix(iri, p) {
			return Term{Kind: TermIRI, Literal: lit}, nil
		}
	}
	return Term{}, errors.WithStack(&InvalidIRIError{IRI: iri})
}

// NewLiteralTerm returns a plain literal term.
func NewLiteralTerm(s string) Term {
	return Term{Kind: TermLiteral, Literal: NewPlainLiteral(s)}
}

// NewBlankNodeTerm returns a blank node term with the given label.
func NewBlankNodeTerm(label string) Term {
	return Term{Kind: TermBlankNode, Literal: NewBlankNode(label)}
}

// Term classifies l by its category.
func (l Literal) Term() Term {
	switch l.Category() {
	case IRICategory:
		return Term{Kind: TermIRI, Literal: l}
	case BlankNodeCategory:
		return Term{Kind: TermBlankNode, Literal: l}
	}
	return Term{Kind: TermLiteral, Literal: l}
}

// Turtle renders the term in Turtle syntax.
func (t Term) Turtle() string {
	return t.Literal.Turtle()
}

func (t Term) String() string {
	return t.Literal.String()
}
