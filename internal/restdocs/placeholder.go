package restdocs

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fjglira/go-restdocs/internal/domain"
)

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// ResolvePattern replaces the placeholders in pattern using ctx:
//
//	{method-name}  kebab-case test method
//	{method_name}  snake_case test method
//	{MethodName}   CamelCase test method
//	{step}         current step count
//
// Unknown placeholders are kept verbatim.
func ResolvePattern(pattern string, ctx *Context) (string, error) {
	return resolve(pattern, ctx.TestMethod(), ctx.StepCount())
}

func resolve(pattern string, method *domain.TestMethod, step int) (string, error) {
	var resolveErr error
	out := placeholderRe.ReplaceAllStringFunc(pattern, func(match string) string {
		name := match[1 : len(match)-1]
		if name == "step" {
			return strconv.Itoa(step)
		}

		var format func([]string) string
		switch name {
		case "method-name":
			format = kebabCase
		case "method_name":
			format = snakeCase
		case "MethodName":
			format = camelCase
		default:
			return match
		}

		if method == nil {
			if resolveErr == nil {
				resolveErr = domain.NewErrorWithSuggestion("resolve", "", step,
					"cannot resolve "+match,
					"document from inside a running test or use a pattern with {step} only",
					domain.ErrNoTestMethod)
			}
			return match
		}
		return format(splitWords(method.FullName()))
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return out, nil
}

func kebabCase(words []string) string {
	return strings.ToLower(strings.Join(words, "-"))
}

func snakeCase(words []string) string {
	return strings.ToLower(strings.Join(words, "_"))
}

func camelCase(words []string) string {
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// splitWords breaks a test name into words on separators and case changes.
// "TestGetHTTPUser/by id" -> [Test Get HTTP User by id]
func splitWords(s string) []string {
	var words []string
	var current []rune
	runes := []rune(s)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}
