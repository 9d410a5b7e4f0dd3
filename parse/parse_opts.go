package parse

type parseOpts struct {
	strict bool
}

type Option func(*parseOpts)

// Strict records skipped lines in the result instead of dropping them
// silently.
func Strict() Option {
	return func(o *parseOpts) { o.strict = true }
}

func (o *parseOpts) skip(res *Result, lineNo int, text, reason string) {
	if !o.strict {
		return
	}
	res.Skipped = append(res.Skipped, Skip{LineNumber: lineNo, Text: text, Reason: reason})
}
