/*
Package expr implements small expression trees over a number field and the
rules that simplify them.

Trees are built by a parser from package redberry running over the field of
trees, so "2*x + 3" becomes a sum of a product and a literal. Literal leaves
hold the text of a number until Materialize parses them with a number parser;
symbols stay symbolic unless bound with Bind. Simplify drives the rules to a
fixed point with package transform.
*/
package expr
