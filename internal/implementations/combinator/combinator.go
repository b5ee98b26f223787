// Package combinator is a small backtracking parser-combinator engine.
//
// A Parser consumes a prefix of its input and yields fragments of type F.
// Every parser is all-or-nothing: on failure the result carries the input it
// was given, untouched.
package combinator

type Result[F any] struct {
	ok        bool
	fragments []F
	rest      string
}

func Success[F any](fragments []F, rest string) Result[F] {
	return Result[F]{ok: true, fragments: fragments, rest: rest}
}

func Failure[F any](input string) Result[F] {
	return Result[F]{rest: input}
}

func (r Result[F]) Ok() bool {
	return r.ok
}

func (r Result[F]) Fragments() []F {
	return r.fragments
}

// Rest is the unconsumed input. For a failure it is the original input.
func (r Result[F]) Rest() string {
	return r.rest
}

type Parser[F any] func(input string) Result[F]

// Char matches a single byte.
func Char[F any](c byte) Parser[F] {
	return func(input string) Result[F] {
		if len(input) == 0 || input[0] != c {
			return Failure[F](input)
		}
		return Success[F](nil, input[1:])
	}
}

// String matches a literal prefix.
func String[F any](s string) Parser[F] {
	return func(input string) Result[F] {
		if len(input) == 0 || len(input) < len(s) || input[:len(s)] != s {
			return Failure[F](input)
		}
		return Success[F](nil, input[len(s):])
	}
}

// Digit matches one ASCII digit and emits wrap(value).
func Digit[F any](wrap func(int) F) Parser[F] {
	return func(input string) Result[F] {
		if len(input) == 0 || input[0] < '0' || input[0] > '9' {
			return Failure[F](input)
		}
		return Success([]F{wrap(int(input[0] - '0'))}, input[1:])
	}
}

func Sequence[F any](parsers ...Parser[F]) Parser[F] {
	return func(input string) Result[F] {
		next := input
		var fragments []F
		for _, parser := range parsers {
			result := parser(next)
			if !result.ok {
				return Failure[F](input)
			}
			fragments = append(fragments, result.fragments...)
			next = result.rest
		}
		return Success(fragments, next)
	}
}

// Alternative returns the first successful branch. Branches are tried in
// order, so a parser whose match is a prefix of another's must come later.
func Alternative[F any](parsers ...Parser[F]) Parser[F] {
	return func(input string) Result[F] {
		for _, parser := range parsers {
			if result := parser(input); result.ok {
				return result
			}
		}
		return Failure[F](input)
	}
}

// Repeat applies parser greedily and succeeds if it matched at least min
// times.
func Repeat[F any](parser Parser[F], min int) Parser[F] {
	return repeat(parser, min, -1)
}

func Optional[F any](parser Parser[F]) Parser[F] {
	return repeat(parser, 0, 1)
}

func repeat[F any](parser Parser[F], min int, max int) Parser[F] {
	return func(input string) Result[F] {
		next := input
		var fragments []F
		count := 0
		for next != "" && (max < 0 || count < max) {
			result := parser(next)
			if !result.ok {
				break
			}
			count++
			fragments = append(fragments, result.fragments...)
			if len(result.rest) == len(next) {
				// Matched without consuming anything; another round would
				// match the same way forever.
				break
			}
			next = result.rest
		}
		if count < min {
			return Failure[F](input)
		}
		return Success(fragments, next)
	}
}

// Map rewrites the fragments of a successful match. When f reports false
// the match is rejected and the original input is returned.
func Map[F any](parser Parser[F], f func(fragments []F) ([]F, bool)) Parser[F] {
	return func(input string) Result[F] {
		result := parser(input)
		if !result.ok {
			return result
		}
		fragments, ok := f(result.fragments)
		if !ok {
			return Failure[F](input)
		}
		return Success(fragments, result.rest)
	}
}
