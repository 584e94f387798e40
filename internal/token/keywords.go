package token

var keywords = map[string]Kind{
	"move":        KwMove,
	"func":        KwFunc,
	"let":         KwLet,
	"let_exists":  KwLetExists,
	"in":          KwIn,
	"make_exists": KwMakeExists,
	"of":          KwOf,
	"cast":        KwCast,
	"by":          KwBy,
	"refl_equiv":  KwReflEquiv,
	"forall":      KwForall,
	"exists":      KwExists,
	"equiv":       KwEquiv,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase spellings count.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
