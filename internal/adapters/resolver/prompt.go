package resolver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// ErrInputClosed is returned when the prompt's input ends before an answer.
var ErrInputClosed = errors.New("resolver: input closed before an answer was given")

const defaultAnswer = "1"

var (
	bannerStyle = color.New(color.BgRed, color.FgWhite, color.Bold)
	labelStyle  = color.New(color.FgGreen)
	promptStyle = color.New(color.FgGreen)
	answerStyle = color.New(color.FgYellow)
)

// Prompt asks a person to settle each conflict. Answers: 1 = new, 2 = old,
// 3 = skip, empty = 1, anything else is used as the translation.
type Prompt struct {
	in     *bufio.Reader
	out    io.Writer
	t      output.T
	locale string
}

var _ output.Resolver = (*Prompt)(nil)

func NewPrompt(in io.Reader, out io.Writer, t output.T, locale string) *Prompt {
	return &Prompt{
		in:     bufio.NewReader(in),
		out:    out,
		t:      t,
		locale: locale,
	}
}

func (p *Prompt) Resolve(ctx context.Context, c entities.Conflict) (entities.Decision, error) {
	if err := ctx.Err(); err != nil {
		return entities.Decision{}, err
	}

	fmt.Fprintln(p.out)
	bannerStyle.Fprintf(p.out, "  %s  ", p.msg("section.conflict"))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out)
	p.field("conflict.original", c.Original)
	p.field("conflict.language", c.Language)
	p.field("conflict.old", c.Old)
	p.field("conflict.new", c.New)

	fmt.Fprintln(p.out)
	promptStyle.Fprint(p.out, p.msg("conflict.choose"))
	fmt.Fprint(p.out, " [")
	answerStyle.Fprint(p.out, defaultAnswer)
	fmt.Fprint(p.out, "]: ")

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return entities.Decision{}, ErrInputClosed
		}
		return entities.Decision{}, fmt.Errorf("read answer: %w", err)
	}
	return parseAnswer(line), nil
}

func (p *Prompt) field(key, value string) {
	labelStyle.Fprint(p.out, p.msg(key))
	fmt.Fprintf(p.out, " %q\n", value)
}

func (p *Prompt) msg(key string) string {
	return p.t.T(p.locale, key, nil)
}

func parseAnswer(line string) entities.Decision {
	answer := strings.TrimSpace(line)
	if answer == "" {
		answer = defaultAnswer
	}
	switch answer {
	case "1":
		return entities.UseNew()
	case "2":
		return entities.UseOld()
	case "3":
		return entities.Skip()
	default:
		return entities.Replace(answer)
	}
}
