package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/grade"
	"github.com/katalvlaran/coinpath/kadane"
	"github.com/katalvlaran/coinpath/sequence"
	"github.com/katalvlaran/coinpath/walk"
)

// tab identifies the active screen.
type tab int

const (
	tabPlay tab = iota
	tabLearn
	tabAbout
	tabCount
)

// Model owns the whole session: the board, the walk state, the player's
// guess, and the latest grading report. It replaces the original
// rerun-everything session store with one explicit value the event loop
// threads through Update.
type Model struct {
	seq   core.Sequence
	state *walk.State

	guess  core.Range
	report *grade.Report

	gen    sequence.Options
	active tab

	styles Styles
	keys   keyMap
	help   help.Model
	width  int
	err    error
}

// New builds the initial model around an already-generated board.
// gen is kept so the "new numbers" action can regenerate with the same
// parameters (and randomness source).
func New(seq core.Sequence, gen sequence.Options) (Model, error) {
	st, err := walk.Reset(seq)
	if err != nil {
		return Model{}, err
	}

	return Model{
		seq:    seq,
		state:  st,
		guess:  core.Range{Start: 0, End: seq.Len() - 1},
		gen:    gen,
		styles: DefaultStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Init implements tea.Model. The game is purely key-driven.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.active = (m.active + 1) % tabCount

			return m, nil

		case key.Matches(msg, m.keys.NewBoard):
			return m.newBoard(), nil
		}

		switch m.active {
		case tabPlay:
			return m.updatePlay(msg), nil
		case tabLearn:
			return m.updateLearn(msg), nil
		}
	}

	return m, nil
}

// newBoard regenerates the sequence and discards all derived state, the
// implicit-cancellation rule: a new board outright replaces the old walk
// and guess.
func (m Model) newBoard() Model {
	seq, err := sequence.Generate(m.gen)
	if err != nil {
		m.err = err

		return m
	}

	st, err := walk.Reset(seq)
	if err != nil {
		m.err = err

		return m
	}

	m.seq = seq
	m.state = st
	m.guess = core.Range{Start: 0, End: seq.Len() - 1}
	m.report = nil
	m.err = nil

	return m
}

// updatePlay handles the guess-selection keys. Moving either endpoint
// invalidates the previous verdict; endpoints clamp so the guess always
// stays a valid inclusive range.
func (m Model) updatePlay(msg tea.KeyMsg) Model {
	last := m.seq.Len() - 1

	switch {
	case key.Matches(msg, m.keys.StartLeft):
		if m.guess.Start > 0 {
			m.guess.Start--
			m.report = nil
		}
	case key.Matches(msg, m.keys.StartRight):
		if m.guess.Start < m.guess.End {
			m.guess.Start++
			m.report = nil
		}
	case key.Matches(msg, m.keys.EndLeft):
		if m.guess.End > m.guess.Start {
			m.guess.End--
			m.report = nil
		}
	case key.Matches(msg, m.keys.EndRight):
		if m.guess.End < last {
			m.guess.End++
			m.report = nil
		}
	case key.Matches(msg, m.keys.Check):
		m = m.checkAnswer()
	}

	return m
}

// checkAnswer solves the board and grades the current guess.
func (m Model) checkAnswer() Model {
	ref, err := kadane.Solve(m.seq)
	if err != nil {
		m.err = err

		return m
	}

	rep, err := grade.Grade(m.seq, m.guess, ref)
	if err != nil {
		m.err = err

		return m
	}

	m.report = &rep
	m.err = nil

	return m
}

// updateLearn handles the walkthrough keys.
func (m Model) updateLearn(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Step):
		if err := m.state.Advance(m.seq); err != nil {
			m.err = err
		}
	case key.Matches(msg, m.keys.ResetWalk):
		st, err := walk.Reset(m.seq)
		if err != nil {
			m.err = err

			return m
		}
		m.state = st
	}

	return m
}
