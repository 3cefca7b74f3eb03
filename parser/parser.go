// Package parser turns lambda calculus source text into a term tree.
//
// The grammar is predictive with a single token of lookahead and no
// backtracking:
//
//	Program      := Statement EOF
//	Statement    := LAMBDA Binding DOT Statement | Application
//	Binding      := ATOM Binding'
//	Binding'     := ATOM Binding' | ε
//	Application  := Expression Application'
//	Application' := Expression Application' | ε
//	Expression   := ATOM | LPAREN Statement RPAREN
package parser

import (
	"github.com/xiam/lambda/ast"
	"github.com/xiam/lambda/lexer"
)

type Parser struct {
	lx  *lexer.Lexer
	tok lexer.Token
}

// New creates a parser over the given source text.
func New(input string) *Parser {
	return &Parser{lx: lexer.New(input)}
}

// Parse resets the tokenizer and parses the whole input. Trailing tokens
// after a complete statement are a parse error. Lexer errors propagate
// unchanged.
func (p *Parser) Parse() (ast.Node, error) {
	p.lx.Reset()
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.program()
}

func (p *Parser) advance() error {
	tok, err := p.lx.Advance()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) peek() lexer.TokenType {
	return p.tok.Type()
}

// pop returns the pending token and advances past it.
func (p *Parser) pop() (lexer.Token, error) {
	saved := p.tok
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return saved, nil
}

// expect pops the pending token if it has the given type, and fails with a
// ParseError at the token's offset otherwise.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if !p.tok.Is(tt) {
		return lexer.Token{}, &ParseError{Offset: p.tok.Offset()}
	}
	return p.pop()
}

func (p *Parser) program() (ast.Node, error) {
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenEOF); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) statement() (ast.Node, error) {
	switch p.peek() {
	case lexer.TokenLambda:
		if _, err := p.pop(); err != nil {
			return nil, err
		}
		params, err := p.binding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenDot); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		return ast.Function{Params: params, Body: body}, nil

	case lexer.TokenLParen, lexer.TokenAtom:
		return p.application()
	}

	return nil, &ParseError{Offset: p.tok.Offset()}
}

// binding parses the non-empty parameter list between a lambda and its dot.
func (p *Parser) binding() ([]string, error) {
	tok, err := p.expect(lexer.TokenAtom)
	if err != nil {
		return nil, err
	}

	params := []string{tok.Text()}
	for p.peek() == lexer.TokenAtom {
		tok, err := p.pop()
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Text())
	}
	return params, nil
}

// application parses one or more juxtaposed expressions. A lone expression
// stays itself; an Application node is built only for two or more.
func (p *Parser) application() (ast.Node, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	items := []ast.Node{expr}
	for p.peek() == lexer.TokenAtom || p.peek() == lexer.TokenLParen {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		items = append(items, expr)
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return ast.Application{Items: items}, nil
}

func (p *Parser) expression() (ast.Node, error) {
	if p.peek() == lexer.TokenAtom {
		tok, err := p.pop()
		if err != nil {
			return nil, err
		}
		return ast.Atom{Name: tok.Text()}, nil
	}

	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return stmt, nil
}

// Parse is a convenience facade over New and (*Parser).Parse.
func Parse(input string) (ast.Node, error) {
	return New(input).Parse()
}
