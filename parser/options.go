package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/xiam/sexptree/lexer"
)

// Option configures a Cursor.
type Option func(*options)

type options struct {
	open  rune
	close rune
	log   logrus.FieldLogger
}

func defaultOptions() options {
	return options{
		open:  '(',
		close: ')',
	}
}

func (o options) symbols() string {
	return string([]rune{o.open, o.close})
}

func (o options) tokenizer() *lexer.Tokenizer {
	return lexer.New(o.symbols())
}

// WithDelimiters sets the characters that open and close a group.
func WithDelimiters(open, close rune) Option {
	return func(o *options) {
		o.open, o.close = open, close
	}
}

// WithLogger enables debug traces of the parser.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}
