package finbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Chat is an interactive session with a Resolver.
type Chat struct {
	w        io.Writer
	r        *bufio.Reader
	resolver *Resolver
	// Render formats a reply before it is printed. Defaults to plain text.
	Render func(Reply) string
}

const prompt = "finbot> "

// NewChat creates a chat session reading questions from 'r' and writing answers to 'w'.
func NewChat(w io.Writer, r io.Reader, resolver *Resolver) *Chat {
	return &Chat{
		w:        w,
		r:        bufio.NewReader(r),
		resolver: resolver,
		Render:   PlainText,
	}
}

// Run starts the REPL. Questions in 'prompts' are answered first, then the
// reader is used until 'bye', end of input, or ctx is done.
func (c *Chat) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(c.w, Greeting)
	fmt.Fprintln(c.w, "Try:", strings.Join(c.resolver.Suggestions(), " | "))
	fmt.Fprintln(c.w, "Type 'bye' to exit.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				fmt.Fprintln(c.w)
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil && (err != io.EOF || input == "") {
				if err == io.EOF {
					fmt.Fprintln(c.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
		}

		if strings.EqualFold(input, "bye") {
			return nil
		}

		fmt.Fprintln(c.w, c.Render(c.resolver.Resolve(input)))
	}
}

// PlainText renders a reply as the response followed by the follow-up question.
func PlainText(r Reply) string {
	if r.FollowUp == "" {
		return r.Response
	}
	return r.Response + "\n\n" + r.FollowUp
}
