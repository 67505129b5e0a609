// Package linex provides two cooperating matching cores: a KMP literal
// search engine with SIMD-accelerated first-byte scanning, and a DFA regex
// engine compiled via Thompson's construction and subset construction.
// Neither core ever backtracks. Literal search and whole-input regex
// matching (Regex.Matches) run in time linear in the text; Regex.Search
// restarts the DFA at each starting offset, so its worst case is quadratic
// in the text length.
//
// Literal search:
//
//	pos, ok := linex.First([]byte("abracadabra"), []byte("abra"))
//	all := linex.AllCollected([]byte("aaaa"), []byte("aa")) // [0, 1, 2]
//
// Regex search, over a restricted ASCII grammar (no backreferences,
// lookaround, capture extraction, or counted repetition):
//
//	re, err := linex.CompileRegex(`[a-z]+@[a-z]+\.[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Matches([]byte("user@example.com")) // true
//
// Every compiled object (Pattern, Regex) is immutable after construction
// and safe to share across goroutines without external synchronization:
// matching only reads precomputed tables.
package linex
