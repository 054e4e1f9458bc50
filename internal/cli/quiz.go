package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/lettercube"
	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/logger"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
	"github.com/SeamusWaldron/lettercube/internal/quiz"
	"github.com/SeamusWaldron/lettercube/internal/storage"
)

var quizCount int

var quizCmd = &cobra.Command{
	Use:   "quiz [facelet|edge|corner]",
	Short: "Drill letters interactively",
	Long: `Start an interactive drill. The highlighted stickers are shown on a net
in your holding orientation; type the letter for each one.

  facelet  one sticker at a time (default)
  edge     both letters of an edge piece
  corner   all three letters of a corner piece

Every answer is recorded; see 'lettercube stats'.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"facelet", "edge", "corner"},
	RunE:      runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().IntVarP(&quizCount, "count", "n", 0, "Stop after N questions (0 for no limit)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	mode := "facelet"
	if len(args) == 1 {
		mode = strings.ToLower(args[0])
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	model, err := newQuizModel(ws.session, storage.NewQuizAttemptRepository(ws.db), mode, quizCount)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "TUI error")
	}

	if m, ok := final.(*quizModel); ok && m.asked > 0 {
		fmt.Printf("Passed %d of %d (%.0f%%)\n", m.passed, m.asked, 100*float64(m.passed)/float64(m.asked))
	}
	return nil
}

// quizModel is the bubbletea model for a drill session.
type quizModel struct {
	session  *lettercube.Session
	attempts *storage.QuizAttemptRepository
	log      *zap.SugaredLogger

	mode    string
	limit   int
	drill   *quiz.FaceletDrill
	trainer *quiz.Trainer

	// Physical stickers of the current question, one input each.
	stickers []facelet.ID
	inputs   []string
	field    int

	answered bool
	expected []string
	wrong    map[int]bool

	asked  int
	passed int

	err      error
	quitting bool
}

func newQuizModel(s *lettercube.Session, attempts *storage.QuizAttemptRepository, mode string, limit int) (*quizModel, error) {
	m := &quizModel{
		session:  s,
		attempts: attempts,
		log:      logger.Component("quiz"),
		mode:     mode,
		limit:    limit,
	}

	switch mode {
	case "facelet", "sticker":
		m.mode = "facelet"
		m.drill = s.FaceletQuiz()
	default:
		kind, err := pieces.ParseKind(mode)
		if err != nil {
			return nil, errors.Newf("unknown quiz mode %q (use facelet, edge or corner)", mode)
		}
		m.mode = kind.String()
		m.trainer = s.PieceTrainer(kind)
	}

	if err := m.next(); err != nil {
		if m.drill != nil {
			return nil, errors.Wrap(err, "no letters to drill yet")
		}
		return nil, err
	}
	return m, nil
}

// next loads the following question.
func (m *quizModel) next() error {
	if m.drill != nil {
		id, err := m.drill.Next()
		if err != nil {
			return err
		}
		m.stickers = []facelet.ID{id}
	} else {
		p, err := m.trainer.Next()
		if err != nil {
			return err
		}
		m.stickers = p.Facelets
	}

	m.inputs = make([]string, len(m.stickers))
	m.field = 0
	m.answered = false
	m.expected = nil
	m.wrong = nil
	m.err = nil
	return nil
}

// target names the question by its sorted logical stickers, so history
// survives orientation changes.
func (m *quizModel) target() string {
	names := make([]string, len(m.stickers))
	for i, id := range m.stickers {
		names[i] = m.session.LogicalID(id).String()
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}

func (m *quizModel) submit() {
	var correct, total int
	m.wrong = make(map[int]bool)

	if m.drill != nil {
		r, err := m.drill.Check(m.inputs[0])
		if err != nil {
			m.err = err
			return
		}
		m.expected = []string{r.Expected}
		total = 1
		if r.Correct {
			correct = 1
		} else {
			m.wrong[0] = true
		}
	} else {
		g, err := m.trainer.Check(m.inputs)
		if err != nil {
			m.err = err
			return
		}
		m.expected = m.trainer.Expected()
		correct, total = g.Correct, g.Total
		for _, i := range g.Wrong {
			m.wrong[i] = true
		}
	}

	m.answered = true
	m.asked++
	if correct == total {
		m.passed++
	}

	if _, err := m.attempts.Record(m.mode, m.target(), correct, total); err != nil {
		m.log.Warnw("failed to record attempt", "error", err)
		m.err = err
	}
}

// Init implements tea.Model.
func (m *quizModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.answered {
		switch key.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "enter", " ":
			if m.limit > 0 && m.asked >= m.limit {
				m.quitting = true
				return m, tea.Quit
			}
			if err := m.next(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch key.String() {
	case "enter":
		if m.inputs[m.field] != "" && m.field < len(m.inputs)-1 {
			m.field++
			return m, nil
		}
		m.submit()

	case "tab", "right":
		m.field = (m.field + 1) % len(m.inputs)

	case "shift+tab", "left":
		m.field = (m.field + len(m.inputs) - 1) % len(m.inputs)

	case "backspace":
		if in := []rune(m.inputs[m.field]); len(in) > 0 {
			m.inputs[m.field] = string(in[:len(in)-1])
		}

	case " ":
		if m.field < len(m.inputs)-1 {
			m.field++
		}

	default:
		if key.Type == tea.KeyRunes {
			m.inputs[m.field] += strings.ToUpper(string(key.Runes))
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *quizModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Lettering quiz: %s", m.mode)))
	b.WriteString("\n")
	score := fmt.Sprintf("Asked %d  Passed %d", m.asked, m.passed)
	if m.limit > 0 {
		score += fmt.Sprintf("  (of %d)", m.limit)
	}
	b.WriteString(statusStyle.Render(score))
	b.WriteString("\n\n")

	// Net in holding orientation with the asked stickers numbered.
	marks := make(map[facelet.ID]string, len(m.stickers))
	for i, id := range m.stickers {
		marks[m.session.LogicalID(id)] = fmt.Sprint(i + 1)
	}
	colors := m.session.LogicalColors()
	b.WriteString(renderNet(func(id facelet.ID) (facelet.Color, string) {
		return colors[id.Position()], marks[id]
	}))
	b.WriteString("\n\n")

	for i, id := range m.stickers {
		logical := m.session.LogicalID(id)
		input := m.inputs[i]
		if !m.answered && i == m.field {
			input += "_"
		}
		line := fmt.Sprintf("%d %s %-3s  %s", i+1, swatch(m.session.ColorAtPhysical(id)), logical, promptStyle.Render(input))
		if m.answered {
			want := m.expected[i]
			if want == "" {
				want = "(none)"
			}
			if m.wrong[i] {
				line += "  " + errorStyle.Render("✗ "+want)
			} else {
				line += "  " + okStyle.Render("✓")
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.answered {
		b.WriteString(helpStyle.Render("enter: next • q/esc: quit"))
	} else {
		b.WriteString(helpStyle.Render("type letters • tab/space: next field • enter: submit • esc: quit"))
	}
	b.WriteString("\n")

	return b.String()
}
