// Package shell implements the line based session that collects a GNFA from a user and prints the
// equivalent regular expression.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geange/gnfa"
	"go.uber.org/zap"
)

// End terminates the state list and the transition list.
const End = "END"

const (
	promptStates      = `Enter the states of GNFA, type "END" when done : `
	promptTerminals   = "Mention the Start State and the Final State : "
	promptTransitions = `Enter the transitions (Type "END" when done.): `
	promptFrom        = "State from : "
	promptTo          = "State to : "
	promptRegex       = "Enter regex : "

	msgBadTerminals  = "Start state and final state are not found in the set of states."
	msgBadTransition = `"from" state and "to" state are not found in the set of states.`

	resultPrefix = "Regular Expression: "
)

type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
	opts   []gnfa.Option
}

func NewSession(r io.Reader, w io.Writer, logger *zap.Logger, opts ...gnfa.Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:     bufio.NewScanner(r),
		out:    w,
		logger: logger,
		opts:   append([]gnfa.Option{gnfa.WithLogger(logger)}, opts...),
	}
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), nil
}

// Run Drives one full session and returns the converted label. Invalid start, accept or transition
// states print the diagnostic line and end the session with the wrapped error.
func (s *Session) Run() (gnfa.Label, error) {
	g, err := s.readAutomaton()
	if err != nil {
		return gnfa.NoPath, err
	}

	label, err := g.ConvertToRegex()
	if err != nil {
		return gnfa.NoPath, err
	}
	s.println(resultPrefix + label.String())
	return label, nil
}

func (s *Session) readAutomaton() (*gnfa.GNFA, error) {
	s.println(promptStates)
	states := make([]string, 0)
	seen := make(map[string]struct{})
	for {
		line, err := s.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading states: %w", err)
		}
		if line == End {
			break
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		states = append(states, line)
	}

	s.println(promptTerminals)
	start, err := s.readLine()
	if err != nil {
		return nil, fmt.Errorf("reading start state: %w", err)
	}
	accept, err := s.readLine()
	if err != nil {
		return nil, fmt.Errorf("reading final state: %w", err)
	}

	g, err := gnfa.NewGNFA(states, start, accept, s.opts...)
	if err != nil {
		if errors.Is(err, gnfa.ErrInvalidConstruction) {
			s.println(msgBadTerminals)
		}
		return nil, err
	}
	s.logger.Debug("states read", zap.Strings("states", states),
		zap.String("start", start), zap.String("accept", accept))

	s.println(promptTransitions)
	for {
		s.println(promptFrom)
		from, err := s.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading transition: %w", err)
		}
		if from == End {
			break
		}
		s.println(promptTo)
		to, err := s.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading transition: %w", err)
		}
		s.println(promptRegex)
		regex, err := s.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading transition: %w", err)
		}

		if err := g.AddTransition(from, to, regex); err != nil {
			if errors.Is(err, gnfa.ErrUnknownState) {
				s.println(msgBadTransition)
			}
			return nil, err
		}
	}
	return g, nil
}
