package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-ca/rules"
)

const (
	appName    = "go-ca"
	appVersion = "0.1.0"

	ruleExample = "s45678b3"
)

var errArgCount = errors.New("expected exactly one rule argument")

// newParser builds the command line parser. The rule is the only input, and
// flaggy's built-in help and version flags are off so rules that happen to start
// with a dash still reach the rule parser.
func newParser() *flaggy.Parser {
	p := flaggy.NewParser(appName)
	p.Description = "Life-like cellular automaton. Pass a rule such as s23b3 (Conway) or s45678b3 (Coral)."
	p.Version = appVersion
	p.ShowHelpOnUnexpected = false
	p.ShowHelpWithHFlag = false
	p.ShowVersionWithVersionFlag = false
	return p
}

// ruleArgs returns the raw command line arguments. Everything is passed
// behind a "--" terminator, so flaggy treats each one as a trailing argument
// and never parses, rejects or exits on it.
func ruleArgs(args []string) ([]string, error) {
	p := newParser()
	if err := p.ParseArgs(append([]string{"--"}, args...)); err != nil {
		return nil, errors.Wrap(err, "[ruleArgs] failed to parse arguments")
	}
	return p.TrailingArguments, nil
}

// parseArgs turns the command line into a rule set, writing diagnostics to out.
func parseArgs(args []string, out io.Writer, au aurora.Aurora) (rules.RuleSet, error) {
	trailing, err := ruleArgs(args)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", au.Red("ERROR:"), err)
		return rules.RuleSet{}, err
	}
	if len(trailing) != 1 {
		fmt.Fprintf(out, "%s Use only 1 argument, for Example: %q\n", au.Red("ERROR:"), ruleExample)
		return rules.RuleSet{}, errors.Wrapf(errArgCount, "[parseArgs] got %d", len(trailing))
	}

	rule := trailing[0]
	rs, err := rules.Parse(rule)
	if err != nil {
		reportRuleError(out, au, rule, err)
		return rules.RuleSet{}, err
	}

	fmt.Fprintf(out, "Rulestring: %s | b: %s | s: %s\n", rule, counts(rs.BornCounts()), counts(rs.SurviveCounts()))
	return rs, nil
}

func reportRuleError(out io.Writer, au aurora.Aurora, rule string, err error) {
	fmt.Fprintln(out, au.Red("Parameter Error:"))

	var digitErr *rules.InvalidDigitError
	switch {
	case errors.As(err, &digitErr):
		fmt.Fprintln(out, digitErr.Caret())
	case errors.Is(err, rules.ErrMissingBornMarker):
		fmt.Fprintf(out, "%s should contain b\n", rule)
	case errors.Is(err, rules.ErrMissingSurviveMarker):
		fmt.Fprintf(out, "%s should contain s\n", rule)
	default:
		fmt.Fprintln(out, err)
	}
}

func counts(ns []int) string {
	var sb strings.Builder
	for _, n := range ns {
		sb.WriteByte(byte('0' + n))
	}
	return sb.String()
}
