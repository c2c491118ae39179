package domain

import (
	"strings"
	"unicode/utf8"
)

const MaxInputLength = 4000

// ConsultRequest is one form submission. It is built fresh per request
// and never stored.
type ConsultRequest struct {
	Role ExpertRole
	Text string
}

// Validate checks the role before anything else so that a bad role never
// reaches credential resolution or the network.
func (c *ConsultRequest) Validate() error {
	if !c.Role.IsValid() {
		return ErrUnknownExpert
	}

	if strings.TrimSpace(c.Text) == "" {
		return ErrEmptyInput
	}

	if len(c.Text) > MaxInputLength {
		return ErrInputTooLong
	}

	return nil
}

func (c *ConsultRequest) Sanitize() {
	c.Text = strings.TrimSpace(c.Text)
	if len(c.Text) > MaxInputLength {
		// back off to a rune boundary so the cut never leaves invalid UTF-8
		cut := MaxInputLength
		for cut > 0 && !utf8.RuneStart(c.Text[cut]) {
			cut--
		}
		c.Text = c.Text[:cut]
	}
}

type ConsultResponse struct {
	Text string
}
