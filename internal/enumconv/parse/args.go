package parse

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/sublee/enumconv/internal/codefmt"
)

func parseString(p *Parser, expr ast.Expr) (string, error) {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", codefmt.Errorf(p, expr, "%c is not string literal", expr)
	}

	s, _ := strconv.Unquote(lit.Value)
	return s, nil
}

func parseName(p *Parser, expr ast.Expr) (string, error) {
	name, err := parseString(p, expr)
	if err != nil {
		return "", err
	}
	if !codefmt.IsIdent(name) {
		return "", codefmt.Errorf(p, expr, "%q is not valid identifier", name)
	}
	return name, nil
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 parameter")
	}
	return call.Args[0], nil
}

func needArgs2(p *Parser, call *ast.CallExpr) (ast.Expr, ast.Expr, error) {
	if len(call.Args) != 2 {
		return nil, nil, codefmt.Errorf(p, call, "need 2 parameters")
	}
	return call.Args[0], call.Args[1], nil
}
