package helpers

import (
	"strings"
)

/*
	Rewrite rebases absolute path operands onto the install root, producing
	the final argument list for the delegate.

	`root` must already have trailing separators stripped (the profile's
	EffectiveRoot guarantees this), so `/stage` + `/etc/x` is `/stage/etc/x`
	and doubled separators cannot occur.  An empty root makes this the
	identity for every token.

	Count and order are preserved exactly.  Flags and the spec token pass
	through untouched whatever their text -- a spec like `/strange:group`
	keeps its leading slash, because kind was fixed at classification and
	rewriting goes by kind, not by shape.
*/
func Rewrite(args []Arg, root string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a.Kind == KindPathOperand && strings.HasPrefix(a.Text, "/") {
			out[i] = root + a.Text
		} else {
			out[i] = a.Text
		}
	}
	return out
}
