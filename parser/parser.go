package parser

import (
	"strings"

	"github.com/utlx-lang/utlx/lexer"
)

// Parser is a recursive-descent, precedence-climbing parser over a
// fully tokenized source (see package doc). Construct one indirectly
// via [Parse]; the zero value is not useful on its own.
type Parser struct {
	toks []lexer.Token
	idx  int
}

// Parse lexes and parses a complete UTL-X script, returning its header
// and its body program.
func Parse(src string) (*Header, *Program, error) {
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, nil, err
	}

	p := &Parser{toks: toks}

	header, err := p.parseHeader()
	if err != nil {
		return nil, nil, err
	}

	prog, err := p.parseProgram()
	if err != nil {
		return nil, nil, err
	}

	if !p.check(lexer.EOF) {
		return nil, nil, p.syntaxErr("unexpected trailing input after script body")
	}

	return header, prog, nil
}

// --- token cursor helpers -------------------------------------------------

func (p *Parser) cur() lexer.Token { return p.toks[p.idx] }

func (p *Parser) prev() lexer.Token {
	if p.idx == 0 {
		return p.toks[0]
	}

	return p.toks[p.idx-1]
}

func (p *Parser) peekKind(offset int) lexer.Kind {
	i := p.idx + offset
	if i >= len(p.toks) {
		return lexer.EOF
	}

	return p.toks[i].Kind
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if t.Kind != lexer.EOF {
		p.idx++
	}

	return t
}

func (p *Parser) check(k lexer.Kind) bool { return p.cur().Kind == k }

func (p *Parser) matchAny(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()

			return true
		}
	}

	return false
}

func (p *Parser) expect(k lexer.Kind) error {
	if !p.check(k) {
		return p.syntaxErr("unexpected token", k)
	}

	p.advance()

	return nil
}

// expectIdentLike consumes an identifier-shaped name: a bare [lexer.Ident],
// used for path segments, option keys, object keys, and format/output
// names, none of which are reserved words in this grammar.
func (p *Parser) expectIdentLike() (string, error) {
	if !p.check(lexer.Ident) {
		return "", p.syntaxErr("expected an identifier", lexer.Ident)
	}

	t := p.advance()

	return t.Literal, nil
}

func (p *Parser) syntaxErr(msg string, expected ...lexer.Kind) error {
	return &SyntaxError{Message: msg, Span: p.cur().Span, Expected: expected}
}

func tokSpan(t lexer.Token) lexer.Span { return t.Span }

// --- header ----------------------------------------------------------------

func (p *Parser) parseHeader() (*Header, error) {
	if err := p.expect(lexer.Pragma); err != nil {
		return nil, err
	}

	verTok := p.cur()
	if verTok.Kind != lexer.Float && verTok.Kind != lexer.Int {
		return nil, p.syntaxErr("expected a version number after %utlx", lexer.Float, lexer.Int)
	}

	p.advance()

	h := &Header{Version: verTok.Literal}

	for {
		switch {
		case p.check(lexer.KwInput):
			p.advance()

			dir, err := p.parseInputDirective("")
			if err != nil {
				return nil, err
			}

			h.Inputs = append(h.Inputs, *dir)

			continue
		case p.check(lexer.Ident) && strings.HasPrefix(p.cur().Literal, "input-"):
			name := strings.TrimPrefix(p.cur().Literal, "input-")
			p.advance()

			dir, err := p.parseInputDirective(name)
			if err != nil {
				return nil, err
			}

			h.Inputs = append(h.Inputs, *dir)

			continue
		}

		break
	}

	if len(h.Inputs) == 0 {
		return nil, p.syntaxErr("expected at least one input directive", lexer.KwInput)
	}

	if err := p.expect(lexer.KwOutput); err != nil {
		return nil, err
	}

	if p.check(lexer.LBrace) {
		p.advance()

		for !p.check(lexer.RBrace) {
			name, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			if err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}

			format, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			opts, err := p.parseOptionsBlock()
			if err != nil {
				return nil, err
			}

			h.Outputs = append(h.Outputs, OutputDirective{Name: name, Format: format, Options: opts})

			if p.check(lexer.Comma) {
				p.advance()
			}
		}

		if err := p.expect(lexer.RBrace); err != nil {
			return nil, err
		}
	} else {
		format, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}

		opts, err := p.parseOptionsBlock()
		if err != nil {
			return nil, err
		}

		h.Outputs = append(h.Outputs, OutputDirective{Format: format, Options: opts})
	}

	if err := p.expect(lexer.HeaderSep); err != nil {
		return nil, err
	}

	return h, nil
}

func (p *Parser) parseInputDirective(name string) (*InputDirective, error) {
	format, err := p.expectIdentLike()
	if err != nil {
		return nil, err
	}

	opts, err := p.parseOptionsBlock()
	if err != nil {
		return nil, err
	}

	return &InputDirective{Name: name, Format: format, Options: opts}, nil
}

func (p *Parser) parseOptionsBlock() (map[string]any, error) {
	if !p.check(lexer.LBrace) {
		return nil, nil
	}

	p.advance()

	opts := map[string]any{}

	for !p.check(lexer.RBrace) {
		key, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}

		val, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}

		opts[key] = val

		if p.check(lexer.Comma) {
			p.advance()
		}
	}

	return opts, p.expect(lexer.RBrace)
}

func (p *Parser) parseLiteralValue() (any, error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.String:
		p.advance()

		return tok.Literal, nil
	case lexer.Int:
		p.advance()

		return tok.Int, nil
	case lexer.Float:
		p.advance()

		return tok.Float, nil
	case lexer.KwTrue:
		p.advance()

		return true, nil
	case lexer.KwFalse:
		p.advance()

		return false, nil
	case lexer.KwNull:
		p.advance()

		return nil, nil
	case lexer.Ident:
		p.advance()

		return tok.Literal, nil
	case lexer.LBracket:
		p.advance()

		items := []any{}

		for !p.check(lexer.RBracket) {
			v, err := p.parseLiteralValue()
			if err != nil {
				return nil, err
			}

			items = append(items, v)

			if p.check(lexer.Comma) {
				p.advance()
			}
		}

		return items, p.expect(lexer.RBracket)
	case lexer.LBrace:
		p.advance()

		m := map[string]any{}

		for !p.check(lexer.RBrace) {
			k, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			if err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}

			v, err := p.parseLiteralValue()
			if err != nil {
				return nil, err
			}

			m[k] = v

			if p.check(lexer.Comma) {
				p.advance()
			}
		}

		return m, p.expect(lexer.RBrace)
	default:
		return nil, p.syntaxErr("expected a literal value", lexer.String, lexer.Int, lexer.Float, lexer.KwTrue, lexer.KwFalse)
	}
}

// --- program body ------------------------------------------------------------

func (p *Parser) parseProgram() (*Program, error) {
	var templates []*TemplateDecl

	order := 0

	for p.check(lexer.KwTemplate) {
		t, err := p.parseTemplateDecl(order)
		if err != nil {
			return nil, err
		}

		templates = append(templates, t)
		order++
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Program{Templates: templates, Body: body}, nil
}

func (p *Parser) parseTemplateDecl(order int) (*TemplateDecl, error) {
	startTok := p.cur()
	p.advance() // 'template'

	if err := p.expect(lexer.KwMatch); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}

	decl := &TemplateDecl{Order: order}

	switch {
	case p.check(lexer.String):
		decl.MatchName = p.cur().Literal
		p.advance()
	case p.check(lexer.LParen):
		p.advance()

		pred, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}

		decl.MatchPred = pred
	default:
		return nil, p.syntaxErr("expected a template match pattern", lexer.String, lexer.LParen)
	}

	if err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	decl.Body = body

	endTok := p.cur()

	if err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	decl.baseNode = baseNode{span: tokSpan(startTok).Merge(tokSpan(endTok))}

	return decl, nil
}

// --- expressions -------------------------------------------------------------

// parseExpr parses a full expression, including the keyword-led forms
// (`let`, `if`, `match`, `apply`) and lambda literals, which bind
// looser than any binary operator: their body extends as far right as
// possible.
func (p *Parser) parseExpr() (Expr, error) {
	switch {
	case p.check(lexer.KwLet):
		return p.parseLet()
	case p.check(lexer.KwIf):
		return p.parseIf()
	case p.check(lexer.KwMatch):
		return p.parseMatch()
	case p.check(lexer.KwApply):
		return p.parseApply()
	}

	if lam, ok, err := p.tryParseLambda(); err != nil {
		return nil, err
	} else if ok {
		return lam, nil
	}

	return p.parsePipeline()
}

func (p *Parser) parseLet() (Expr, error) {
	startTok := p.cur()
	p.advance() // 'let'

	var bindings []Binding

	for {
		name, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.Assign); err != nil {
			return nil, err
		}

		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, Binding{Name: name, Value: val})

		if p.check(lexer.Comma) {
			p.advance()

			continue
		}

		break
	}

	if err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &LetExpr{
		baseNode: baseNode{span: tokSpan(startTok).Merge(body.Span())},
		Bindings: bindings,
		Body:     body,
	}, nil
}

func (p *Parser) parseIf() (Expr, error) {
	startTok := p.cur()
	p.advance() // 'if'

	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}

	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.KwElse); err != nil {
		return nil, err
	}

	elseExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Ternary{
		baseNode: baseNode{span: tokSpan(startTok).Merge(elseExpr.Span())},
		Cond:     cond,
		Then:     then,
		Else:     elseExpr,
	}, nil
}

func (p *Parser) parseMatch() (Expr, error) {
	startTok := p.cur()
	p.advance() // 'match'

	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}

	subject, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	var arms []MatchArm

	for !p.check(lexer.RBrace) {
		var pattern Expr

		if p.check(lexer.Ident) && p.cur().Literal == "_" {
			p.advance()
		} else {
			pat, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}

			pattern = pat
		}

		if err := p.expect(lexer.FatArrow); err != nil {
			return nil, err
		}

		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		arms = append(arms, MatchArm{Pattern: pattern, Body: body})

		if p.check(lexer.Comma) {
			p.advance()
		}
	}

	endTok := p.cur()

	if err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	return &MatchExpr{
		baseNode: baseNode{span: tokSpan(startTok).Merge(tokSpan(endTok))},
		Subject:  subject,
		Arms:     arms,
	}, nil
}

func (p *Parser) parseApply() (Expr, error) {
	startTok := p.cur()
	p.advance() // 'apply'

	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}

	path, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	endTok := p.cur()

	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}

	return &ApplyExpr{
		baseNode: baseNode{span: tokSpan(startTok).Merge(tokSpan(endTok))},
		Path:     path,
	}, nil
}

// tryParseLambda attempts to parse a lambda literal starting at the
// current position, backtracking cleanly if the tokens don't form one
// (used to disambiguate `(a, b) => ...` from a parenthesized
// expression, and `x => ...` from a bare identifier).
func (p *Parser) tryParseLambda() (Expr, bool, error) {
	switch {
	case p.check(lexer.Ident) && p.peekKind(1) == lexer.FatArrow:
		startTok := p.advance() // ident
		p.advance()             // =>

		body, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}

		return &LambdaLit{
			baseNode: baseNode{span: tokSpan(startTok).Merge(body.Span())},
			Params:   []string{startTok.Literal},
			Body:     body,
		}, true, nil
	case p.check(lexer.LParen):
		save := p.idx
		startTok := p.cur()
		p.advance() // (

		var names []string

		ok := true

		if !p.check(lexer.RParen) {
			for {
				if !p.check(lexer.Ident) {
					ok = false

					break
				}

				names = append(names, p.cur().Literal)
				p.advance()

				if p.check(lexer.Comma) {
					p.advance()

					continue
				}

				break
			}
		}

		if ok && p.check(lexer.RParen) {
			p.advance() // )

			if p.check(lexer.FatArrow) {
				p.advance()

				body, err := p.parseExpr()
				if err != nil {
					return nil, false, err
				}

				return &LambdaLit{
					baseNode: baseNode{span: tokSpan(startTok).Merge(body.Span())},
					Params:   names,
					Body:     body,
				}, true, nil
			}
		}

		p.idx = save

		return nil, false, nil
	}

	return nil, false, nil
}

func (p *Parser) parsePipeline() (Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.PipeGT) {
		p.advance()

		rhs, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if call, ok := rhs.(*CallExpr); ok {
			call.Args = append([]Expr{left}, call.Args...)
			left = call
		} else {
			left = &CallExpr{
				baseNode: baseNode{span: left.Span().Merge(rhs.Span())},
				Callee:   rhs,
				Args:     []Expr{left},
			}
		}
	}

	return left, nil
}

func (p *Parser) parseBinary(next func() (Expr, error), ops ...lexer.Kind) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.matchAny(ops...) {
		op := p.prev().Kind

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{
			baseNode: baseNode{span: left.Span().Merge(right.Span())},
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

func (p *Parser) parseOr() (Expr, error) {
	return p.parseBinary(p.parseAnd, lexer.OrOr)
}

func (p *Parser) parseAnd() (Expr, error) {
	return p.parseBinary(p.parseEquality, lexer.AndAnd)
}

func (p *Parser) parseEquality() (Expr, error) {
	return p.parseBinary(p.parseRelational, lexer.EqEq, lexer.NotEq)
}

func (p *Parser) parseRelational() (Expr, error) {
	return p.parseBinary(p.parseAdditive, lexer.Lt, lexer.Lte, lexer.Gt, lexer.Gte)
}

func (p *Parser) parseAdditive() (Expr, error) {
	return p.parseBinary(p.parseMultiplicative, lexer.Plus, lexer.Minus)
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	return p.parseBinary(p.parseUnary, lexer.Star, lexer.Slash, lexer.Percent)
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.check(lexer.Minus) || p.check(lexer.Not) {
		startTok := p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			baseNode: baseNode{span: tokSpan(startTok).Merge(operand.Span())},
			Op:       startTok.Kind,
			Operand:  operand,
		}, nil
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.check(lexer.Dot):
			p.advance()

			switch {
			case p.check(lexer.At):
				p.advance()

				name, err := p.expectIdentLike()
				if err != nil {
					return nil, err
				}

				// `@name` is only valid as the final component of a path.
				return &AttrAccess{baseNode: baseNode{span: expr.Span()}, Target: expr, Name: name}, nil
			case p.check(lexer.Star):
				p.advance()

				expr = &Wildcard{baseNode: baseNode{span: expr.Span()}, Target: expr}
			default:
				name, err := p.expectIdentLike()
				if err != nil {
					return nil, err
				}

				expr = &MemberAccess{baseNode: baseNode{span: expr.Span()}, Target: expr, Name: name}
			}
		case p.check(lexer.DotDot):
			p.advance()

			name, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			expr = &Descendant{baseNode: baseNode{span: expr.Span()}, Target: expr, Name: name}
		case p.check(lexer.LBracket):
			p.advance()

			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			endTok := p.cur()
			if err := p.expect(lexer.RBracket); err != nil {
				return nil, err
			}

			expr = &Bracket{
				baseNode:     baseNode{span: expr.Span().Merge(tokSpan(endTok))},
				Target:       expr,
				Inner:        inner,
				InnerIsIndex: isPlainIntLit(inner),
			}
		case p.check(lexer.LParen):
			args, endSpan, err := p.parseArgs()
			if err != nil {
				return nil, err
			}

			expr = &CallExpr{baseNode: baseNode{span: expr.Span().Merge(endSpan)}, Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Expr, lexer.Span, error) {
	p.advance() // (

	var args []Expr

	if !p.check(lexer.RParen) {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, lexer.Span{}, err
			}

			args = append(args, a)

			if p.check(lexer.Comma) {
				p.advance()

				continue
			}

			break
		}
	}

	endTok := p.cur()
	if err := p.expect(lexer.RParen); err != nil {
		return nil, lexer.Span{}, err
	}

	return args, tokSpan(endTok), nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.Int:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitInt, Int: tok.Int}, nil
	case lexer.Float:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitFloat, Float: tok.Float}, nil
	case lexer.String:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitString, Str: tok.Literal}, nil
	case lexer.KwTrue:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitBool, Bool: true}, nil
	case lexer.KwFalse:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitBool, Bool: false}, nil
	case lexer.KwNull:
		p.advance()

		return &ScalarLit{baseNode: baseNode{span: tok.Span}, Kind: LitNull}, nil
	case lexer.At:
		p.advance()

		// A bare `@name` (no target before the `@`) selects the
		// attribute off the current context, so a template body can
		// write `{ sku: @sku }` instead of `@.@sku`.
		if p.check(lexer.Ident) {
			name, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			return &AttrAccess{
				baseNode: baseNode{span: tok.Span},
				Target:   &CurrentRef{baseNode: baseNode{span: tok.Span}},
				Name:     name,
			}, nil
		}

		return &CurrentRef{baseNode: baseNode{span: tok.Span}}, nil
	case lexer.Ident:
		p.advance()

		return &Ident{baseNode: baseNode{span: tok.Span}, Name: tok.Literal}, nil
	case lexer.LBracket:
		return p.parseArrayLit()
	case lexer.LBrace:
		return p.parseObjectLit()
	case lexer.LParen:
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}

		return inner, nil
	default:
		return nil, p.syntaxErr("unexpected token in expression",
			lexer.Ident, lexer.Int, lexer.Float, lexer.String, lexer.LParen, lexer.LBracket, lexer.LBrace)
	}
}

func (p *Parser) parseArrayLit() (Expr, error) {
	startTok := p.cur()
	p.advance() // [

	var elems []Expr

	if !p.check(lexer.RBracket) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			elems = append(elems, e)

			if p.check(lexer.Comma) {
				p.advance()

				continue
			}

			break
		}
	}

	endTok := p.cur()
	if err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}

	return &ArrayLit{baseNode: baseNode{span: tokSpan(startTok).Merge(tokSpan(endTok))}, Elements: elems}, nil
}

func (p *Parser) parseObjectLit() (Expr, error) {
	startTok := p.cur()
	p.advance() // {

	var entries []ObjectEntry

	for !p.check(lexer.RBrace) {
		var entry ObjectEntry

		switch {
		case p.check(lexer.At):
			p.advance()

			name, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			entry.IsAttribute = true
			entry.Key = name
		case p.check(lexer.LBracket):
			p.advance()

			keyExpr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			if err := p.expect(lexer.RBracket); err != nil {
				return nil, err
			}

			entry.KeyExpr = keyExpr
		case p.check(lexer.String):
			entry.Key = p.cur().Literal
			p.advance()
		default:
			name, err := p.expectIdentLike()
			if err != nil {
				return nil, err
			}

			entry.Key = name
		}

		if err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}

		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		entry.Value = val
		entries = append(entries, entry)

		if p.check(lexer.Comma) {
			p.advance()
		}
	}

	endTok := p.cur()
	if err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}

	return &ObjectLit{baseNode: baseNode{span: tokSpan(startTok).Merge(tokSpan(endTok))}, Entries: entries}, nil
}

// isPlainIntLit reports whether e is syntactically a bare non-negative
// integer literal, the shape [Bracket.InnerIsIndex] records for the
// interpreter: the parser decides the syntactic shape, the
// interpreter resolves runtime meaning.
func isPlainIntLit(e Expr) bool {
	lit, ok := e.(*ScalarLit)

	return ok && lit.Kind == LitInt
}
