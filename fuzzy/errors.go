package fuzzy

import "errors"

// ErrUnexpectedStatementKind is returned by Process when it encounters an
// ast.Node outside the four statement kinds while walking a product.
var ErrUnexpectedStatementKind = errors.New("fuzzy: unexpected statement kind")
